package models

import (
	"fmt"
	"strings"
)

// Unit is the temperature unit currently displayed
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// Units lists every unit in toggle order
var Units = []Unit{Celsius, Fahrenheit}

// Symbol returns the display suffix, e.g. "°C"
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Other returns the opposite unit
func (u Unit) Other() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// ParseUnit accepts "c", "f", "celsius" or "fahrenheit" in any case
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "metric":
		return Celsius, nil
	case "f", "fahrenheit", "imperial":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit %q", s)
}
