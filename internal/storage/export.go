package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sphiros/internal/eos"
)

type ExportData struct {
	Run  RunMetadata `json:"run"`
	Rho  []float64   `json:"rho"`
	Eint []float64   `json:"eint"`
	P    []float64   `json:"p"`
	Sos  []float64   `json:"sos"`
}

func ExportJSON(w io.Writer, meta RunMetadata, f eos.Fields) error {
	data := ExportData{
		Run:  meta,
		Rho:  f.Rho,
		Eint: f.E,
		P:    f.P,
		Sos:  f.C,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the particle arrays in the same layout as fields.csv.
func ExportCSV(w io.Writer, f eos.Fields) error {
	n, err := f.Len()
	if err != nil {
		return err
	}
	return writeFields(w, f, n)
}
