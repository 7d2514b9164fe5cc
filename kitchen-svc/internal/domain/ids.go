package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("not found")

var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// UUID keys the order-side tables: locations, orders, order items, menu
// items, stations and kitchen tickets.
type UUID string

// LegacyID keys the integer-keyed tables: ingredients and sections.
type LegacyID int64

func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

func ParseUUID(s string) (UUID, bool) {
	s = strings.TrimSpace(s)
	if !IsUUID(s) {
		return "", false
	}
	return UUID(s), true
}

func (id UUID) String() string { return string(id) }

func ParseLegacyID(s string) (LegacyID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("id must be positive")
	}
	return LegacyID(n), nil
}

func (id LegacyID) String() string { return strconv.FormatInt(int64(id), 10) }
