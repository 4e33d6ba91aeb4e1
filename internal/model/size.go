package model

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Unit tags a Size value. The zero value is UnitNone, meaning the
// source file did not carry this quantity at all.
type Unit int

const (
	UnitNone Unit = iota
	UnitBytes
	UnitKilobytes
	UnitMegabytes
	UnitGigabytes
	UnitTerabytes
	// UnitUnknown marks a bare number with no unit suffix. Its byte
	// interpretation is undefined without an explicit policy, so it is
	// excluded from byte conversion.
	UnitUnknown
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "B"
	case UnitKilobytes:
		return "KB"
	case UnitMegabytes:
		return "MB"
	case UnitGigabytes:
		return "GB"
	case UnitTerabytes:
		return "TB"
	case UnitUnknown:
		return "??"
	default:
		return "none"
	}
}

func (u Unit) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(u.String())), nil
}

func (u *Unit) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	switch s {
	case "B":
		*u = UnitBytes
	case "KB":
		*u = UnitKilobytes
	case "MB":
		*u = UnitMegabytes
	case "GB":
		*u = UnitGigabytes
	case "TB":
		*u = UnitTerabytes
	case "??":
		*u = UnitUnknown
	default:
		*u = UnitNone
	}
	return nil
}

// Size is a tagged byte-size quantity. Bytes and UnknownUnits payloads
// are integral; the scaled units carry a fractional mantissa.
type Size struct {
	Unit  Unit    `json:"unit"`
	Value float64 `json:"value"`
}

func SizeBytes(n uint64) Size      { return Size{Unit: UnitBytes, Value: float64(n)} }
func SizeKilobytes(v float64) Size { return Size{Unit: UnitKilobytes, Value: v} }
func SizeMegabytes(v float64) Size { return Size{Unit: UnitMegabytes, Value: v} }
func SizeGigabytes(v float64) Size { return Size{Unit: UnitGigabytes, Value: v} }
func SizeTerabytes(v float64) Size { return Size{Unit: UnitTerabytes, Value: v} }

// ParseSize reads a free-text "<number> <unit>" token. Unit suffixes
// are case-insensitive; a bare number has unknown units; anything
// unparsable collapses to the None value. It never fails.
func ParseSize(s string) Size {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return Size{}
	case 1:
		n, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return Size{}
		}
		return Size{Unit: UnitUnknown, Value: float64(n)}
	default:
		num, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Size{}
		}
		switch strings.ToLower(fields[1]) {
		case "kb", "kbytes":
			return SizeKilobytes(num)
		case "mb", "mbytes":
			return SizeMegabytes(num)
		case "gb", "gbytes":
			return SizeGigabytes(num)
		case "tb", "tbytes":
			return SizeTerabytes(num)
		default:
			if num < 0 {
				return SizeBytes(0)
			}
			return SizeBytes(uint64(num))
		}
	}
}

func (s Size) IsNone() bool { return s.Unit == UnitNone }

// Round promotes the value through KB/MB/GB/TB until the mantissa
// drops below the divisor for the chosen base (2 => 1024, 10 => 1000).
// Promotion stops hard at terabytes even if the mantissa is still
// large. Returns false for the None value and for unsupported bases.
func (s Size) Round(base int) (Size, bool) {
	if s.Unit == UnitNone {
		return Size{}, false
	}
	var div float64
	switch base {
	case 2:
		div = 1024
	case 10:
		div = 1000
	default:
		return Size{}, false
	}

	unit := s.Unit
	if unit == UnitUnknown {
		unit = UnitBytes
	}
	num := s.Value
	for num >= div && unit < UnitTerabytes {
		num /= div
		unit++
	}
	return Size{Unit: unit, Value: num}, true
}

// Bytes converts to an integer byte count under the chosen base.
// None and UnknownUnits carry no defined byte interpretation.
func (s Size) Bytes(base int) (uint64, bool) {
	var k float64
	switch base {
	case 2:
		k = 1024
	case 10:
		k = 1000
	default:
		return 0, false
	}
	switch s.Unit {
	case UnitBytes:
		return uint64(s.Value), true
	case UnitKilobytes:
		return uint64(s.Value * k), true
	case UnitMegabytes:
		return uint64(s.Value * k * k), true
	case UnitGigabytes:
		return uint64(s.Value * k * k * k), true
	case UnitTerabytes:
		return uint64(s.Value * k * k * k * k), true
	default:
		return 0, false
	}
}

func (s Size) String() string {
	switch s.Unit {
	case UnitNone:
		return "none"
	case UnitBytes, UnitUnknown:
		return fmt.Sprintf("%d %s", uint64(s.Value), s.Unit)
	default:
		return fmt.Sprintf("%.2f %s", s.Value, s.Unit)
	}
}

func (s Size) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{
		Name:  xml.Name{Local: "unit"},
		Value: s.Unit.String(),
	})
	var body string
	switch s.Unit {
	case UnitNone:
	case UnitBytes, UnitUnknown:
		body = strconv.FormatUint(uint64(s.Value), 10)
	default:
		body = strconv.FormatFloat(s.Value, 'f', -1, 64)
	}
	return e.EncodeElement(body, start)
}
