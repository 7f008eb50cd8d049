package chipdiff

import (
	"fmt"
	"strings"
)

// Record identifies a chipset sold in a given fiscal year, with the customer
// metadata that came with the sales export.
type Record struct {
	// ID is the chipset identifier (the "Chipset SP" column). It is the
	// unique key of a record within a year's dataset.
	ID string `json:"id"`
	// Customer is free text from the export.
	Customer string `json:"customer"`
	// PDM is the product-development-manager name, free text.
	PDM string `json:"pdm"`
}

// NewRecord returns a Record with all fields trimmed of surrounding spaces.
func NewRecord(id, customer, pdm string) Record {
	return Record{
		ID:       strings.TrimSpace(id),
		Customer: strings.TrimSpace(customer),
		PDM:      strings.TrimSpace(pdm),
	}
}

// Validate checks a record for ingestion. An empty id is the only rejection
// cause: customer and PDM are plain metadata and may be blank.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record has an empty chipset id")
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("%s (customer=%q pdm=%q)", r.ID, r.Customer, r.PDM)
}
