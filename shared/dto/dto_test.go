package dto_test

import (
	"net/http/httptest"
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/model"
	"salon/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 9, 2, 17, 30, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "front-desk",
		ModifiedBy: "system",
	})

	if expected := timezone.Format(createdAt, constant.DateFormat); metadata.CreatedAt != expected {
		t.Errorf("expected CreatedAt %s, got %s", expected, metadata.CreatedAt)
	}

	if expected := timezone.Format(modifiedAt, constant.DateFormat); metadata.ModifiedAt != expected {
		t.Errorf("expected ModifiedAt %s, got %s", expected, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "front-desk" || metadata.ModifiedBy != "system" {
		t.Errorf("unexpected actors %s / %s", metadata.CreatedBy, metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dto.QueryParams
	}{
		{name: "empty", query: "", expected: dto.QueryParams{}},
		{name: "page and limit", query: "?page=2&limit=25", expected: dto.QueryParams{Page: 2, Limit: 25}},
		{name: "garbage ignored", query: "?page=two&limit=-5", expected: dto.QueryParams{}},
		{name: "sorting is not read", query: "?sort_by=id&sort_dir=DESC", expected: dto.QueryParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.QueryParams{}
			params.FromRequest(httptest.NewRequest("GET", "/v1/appointments/a1/history"+tt.query, nil))

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestQueryParams_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{name: "defaults", params: dto.QueryParams{}, expected: dto.QueryParams{Page: 1, Limit: 50}},
		{name: "within bounds", params: dto.QueryParams{Page: 3, Limit: 10}, expected: dto.QueryParams{Page: 3, Limit: 10}},
		{name: "over the cap", params: dto.QueryParams{Page: 1, Limit: 500}, expected: dto.QueryParams{Page: 1, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Clamp(50)

			if tt.params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, tt.params)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "studio_id", Value: "s1", Operator: dto.FilterOperatorEq, Table: "appointments"},
			dto.Filter{ArgName: "date_from", Field: "appointment_date", Value: "2025-09-01", Operator: dto.FilterOperatorGreaterEq, Table: "appointments"},
			dto.Filter{Field: "status", Value: []string{"scheduled", "confirmed"}, Operator: dto.FilterOperatorIn, Table: "appointments"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(appointments.studio_id = :studio_id AND appointments.appointment_date >= :date_from AND appointments.status IN (:status_0, :status_1))"
	if where != expected {
		t.Errorf("expected %s, got %s", expected, where)
	}

	if args["date_from"] != "2025-09-01" || args["status_0"] != "scheduled" || args["status_1"] != "confirmed" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()
	if where != "" || len(args) != 0 {
		t.Errorf("expected empty clause, got %q %v", where, args)
	}
}

func TestFilter_EmptyInMatchesNothing(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn, Table: "appointments"}

	where, args := filter.GetWhereClause()

	if where != "FALSE" || len(args) != 0 {
		t.Errorf("expected FALSE with no args, got %q %v", where, args)
	}
}

func TestNullOrEq(t *testing.T) {
	group := dto.NullOrEq("availability_rules", "team_member_id", "tm-1")

	where, args := group.GetWhereClause()

	expected := "(availability_rules.team_member_id IS NULL OR availability_rules.team_member_id = :team_member_id)"
	if where != expected {
		t.Errorf("expected %s, got %s", expected, where)
	}

	if args["team_member_id"] != "tm-1" {
		t.Errorf("expected team_member_id arg to be tm-1, got %v", args["team_member_id"])
	}

	nullOnly := dto.NullOrEq("availability_rules", "team_member_id", "")

	where, args = nullOnly.GetWhereClause()

	if where != "(availability_rules.team_member_id IS NULL)" {
		t.Errorf("expected null-only clause, got %s", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
