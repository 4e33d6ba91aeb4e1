// Package export renders the collected inventory for stdout.
package export

import (
	"encoding/xml"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"ferrix-agent/internal/model"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders the inventory as compact JSON.
func JSON(inv model.Inventory) ([]byte, error) {
	out, err := jsonAPI.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("marshal inventory: %w", err)
	}
	return out, nil
}

// JSONIndent renders the inventory as indented JSON.
func JSONIndent(inv model.Inventory) ([]byte, error) {
	out, err := jsonAPI.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal inventory: %w", err)
	}
	return out, nil
}

// xmlInventory wraps the inventory in a stable document element.
type xmlInventory struct {
	XMLName xml.Name `xml:"ferrix"`
	model.Inventory
}

// XML renders the inventory as an XML document.
func XML(inv model.Inventory) ([]byte, error) {
	out, err := xml.MarshalIndent(xmlInventory{Inventory: inv}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal inventory xml: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
