package shared

import (
	"context"
	"encoding/json"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/failure"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its identifying parts, e.g. appointment:get:<studio>:<id>.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends a stable hash of the query values to the prefix.
func BuildCacheKeyWithQuery(prefix string, query ...any) string {
	raw, err := json.Marshal(query)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

		return prefix
	}

	return BuildCacheKey(prefix, strconv.FormatUint(xxhash.Sum64(raw), 16))
}

// InvalidateCaches removes every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	pattern := prefix + cacheKeySeparator + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}

// Identity returns the studio the request acts on and the acting user, as set by the auth middleware.
func Identity(ctx context.Context) (studioID, actorID string, err error) {
	studioID, _ = ctx.Value(constant.ContextKeyStudioID).(string)
	actorID, _ = ctx.Value(constant.ContextKeyUserID).(string)

	if studioID == constant.Empty || actorID == constant.Empty {
		return "", "", failure.Unauthorized("unauthorized") // nolint:wrapcheck
	}

	return studioID, actorID, nil
}
