package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/geom"
)

type jsonPoint struct {
	Index int     `json:"i"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type jsonCurve struct {
	Quadratic curve.Quadratic `json:"quadratic"`
	Points    []jsonPoint     `json:"points"`
}

// WriteCSV writes one "i,x,y" row per sample after a header row.
func WriteCSV(w io.Writer, c *curve.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "x", "y"}); err != nil {
		return err
	}
	for i, p := range c.Points() {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV.
func ReadCSV(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return []geom.Point{}, nil
	}

	points := make([]geom.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: y: %w", i+1, err)
		}
		points = append(points, geom.Pt(x, y))
	}
	return points, nil
}

func WriteJSON(w io.Writer, c *curve.Curve) error {
	out := jsonCurve{Quadratic: c.Quadratic(), Points: make([]jsonPoint, c.Len())}
	for i, p := range c.Points() {
		out.Points[i] = jsonPoint{Index: i, X: p.X, Y: p.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
