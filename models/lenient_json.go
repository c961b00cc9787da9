package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts tried, in order, for textual dates without a usable RFC 3339 form.
// Layouts without a zone are read in local time.
var lenientDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds:
// 1e11 seconds is past the year 5000, 1e11 milliseconds is 1973.
const epochMillisThreshold = 1e11

// lenientID reads an identifier sent either as a JSON string or a number.
// null and a missing value give "".
func lenientID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id must be a string or a number, got %s", raw)
	}
	return n.String(), nil
}

// lenientDate reads a timestamp in whatever shape a backend sends: RFC 3339,
// a few common layouts, or epoch seconds/milliseconds as a number or a
// numeric string. Anything else, including "" and null, yields the zero time.
func lenientDate(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}

	if raw[0] != '"' {
		return epochTime(string(raw))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range lenientDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return epochTime(s)
}

func epochTime(s string) time.Time {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}
	}

	if math.Abs(v) >= epochMillisThreshold {
		return time.UnixMilli(int64(v))
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9))
}

// UnmarshalJSON accepts numeric order ids and loosely formatted dates. An
// unreadable date becomes the zero time instead of failing the whole list.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plainOrder Order
	aux := struct {
		*plainOrder
		OrderID json.RawMessage `json:"orderId"`
		Date    json.RawMessage `json:"date"`
	}{plainOrder: (*plainOrder)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := lenientID(aux.OrderID)
	if err != nil {
		return fmt.Errorf("orderId: %w", err)
	}
	o.OrderID = id
	o.Date = lenientDate(aux.Date)
	return nil
}

// UnmarshalJSON accepts numeric product ids.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plainProduct Product
	aux := struct {
		*plainProduct
		ID json.RawMessage `json:"id"`
	}{plainProduct: (*plainProduct)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := lenientID(aux.ID)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	p.ID = id
	return nil
}
