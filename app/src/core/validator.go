package core

import (
	"math"
	"strings"

	"carbon-backend/app/src/domain"
)

// Validate checks a raw payload against the active measurement schema and
// returns the canonical form. It is pure: no I/O, no side effects, and it
// fails fast on the first missing or mistyped field. There is no partial
// coercion; a numeric string for co2_ppm is a rejection, not a number.
//
// Client-supplied timing fields (timestamp_ms, timestamp_s) are ignored:
// ReceivedAt is stamped by the ingest coordinator.
func Validate(raw domain.RawPayload) (domain.Measurement, error) {
	var m domain.Measurement

	deviceID, err := requiredString(raw, "device_id")
	if err != nil {
		return domain.Measurement{}, err
	}
	m.DeviceID = deviceID

	ppm, err := requiredNumber(raw, "co2_ppm")
	if err != nil {
		return domain.Measurement{}, err
	}
	m.CO2PPM = ppm

	if v, ok := raw["co2_emission_kg_per_hr"]; ok {
		emission, err := asFiniteNumber("co2_emission_kg_per_hr", v)
		if err != nil {
			return domain.Measurement{}, err
		}
		m.EmissionKgPerHr = &emission
	}

	if v, ok := raw["asset_type"]; ok {
		s, err := asNonEmptyString("asset_type", v)
		if err != nil {
			return domain.Measurement{}, err
		}
		m.AssetType = s
	}

	if v, ok := raw["asset_name"]; ok {
		s, err := asNonEmptyString("asset_name", v)
		if err != nil {
			return domain.Measurement{}, err
		}
		m.AssetName = s
	}

	return m, nil
}

func requiredString(raw domain.RawPayload, field string) (string, error) {
	v, ok := raw[field]
	if !ok {
		return "", &domain.ValidationError{Field: field, Reason: "is required"}
	}
	return asNonEmptyString(field, v)
}

func requiredNumber(raw domain.RawPayload, field string) (float64, error) {
	v, ok := raw[field]
	if !ok {
		return 0, &domain.ValidationError{Field: field, Reason: "is required"}
	}
	return asFiniteNumber(field, v)
}

func asNonEmptyString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &domain.ValidationError{Field: field, Reason: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &domain.ValidationError{Field: field, Reason: "must not be empty"}
	}
	return s, nil
}

func asFiniteNumber(field string, v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &domain.ValidationError{Field: field, Reason: "must be a finite number"}
	}
	return f, nil
}
