package utils

const (
	// AcronymIdKey is the key for acronym ID used in routing parameters.
	AcronymIdKey = "id"

	// OffsetParamKey is the key for offset used in pagination query parameters.
	OffsetParamKey = "offset"

	// LimitParamKey is the key for limit used in pagination query parameters.
	LimitParamKey = "limit"
)
