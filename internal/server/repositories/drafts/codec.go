package drafts

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobwizard/internal/server/models"
)

// row is the column-level representation shared by the SQL backends.
type row struct {
	data        []byte
	validation  []byte
	fieldStates []byte
	payment     []byte
}

func encodeRow(d *models.Draft) (*row, error) {
	var (
		r   row
		err error
	)
	if r.data, err = json.Marshal(nonNilTree(d.Data)); err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	if r.validation, err = json.Marshal(nonNilMap(d.Validation)); err != nil {
		return nil, fmt.Errorf("encode validation: %w", err)
	}
	states := d.FieldStates
	if states == nil {
		states = map[string]models.FieldState{}
	}
	if r.fieldStates, err = json.Marshal(states); err != nil {
		return nil, fmt.Errorf("encode field states: %w", err)
	}
	if d.Payment != nil {
		if r.payment, err = json.Marshal(d.Payment); err != nil {
			return nil, fmt.Errorf("encode payment: %w", err)
		}
	}
	return &r, nil
}

func (r *row) decodeInto(d *models.Draft) error {
	dec := json.NewDecoder(bytes.NewReader(r.data))
	dec.UseNumber()
	if err := dec.Decode(&d.Data); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	if err := json.Unmarshal(r.validation, &d.Validation); err != nil {
		return fmt.Errorf("decode validation: %w", err)
	}
	if err := json.Unmarshal(r.fieldStates, &d.FieldStates); err != nil {
		return fmt.Errorf("decode field states: %w", err)
	}
	if len(r.payment) > 0 {
		var p models.PaymentIntent
		if err := json.Unmarshal(r.payment, &p); err != nil {
			return fmt.Errorf("decode payment: %w", err)
		}
		d.Payment = &p
	}
	return nil
}

func nonNilTree(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
