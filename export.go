package solarvibe

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// CatalogueVersion is the version written in catalogue files.
const CatalogueVersion = "1.0"

// catalogueFile is the JSON layout of a catalogue.
type catalogueFile struct {
	Version string     `json:"version"`
	Name    string     `json:"name,omitempty"`
	Bodies  []bodyJSON `json:"bodies"`
}

type ringJSON struct {
	InnerScale float64 `json:"innerScale,omitempty"`
	OuterScale float64 `json:"outerScale,omitempty"`
	Color      string  `json:"color,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	NodeDeg    float64 `json:"nodeDeg,omitempty"`
}

type bodyJSON struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Type                string         `json:"type"`
	RadiusKm            float64        `json:"radiusKm"`
	RenderRadius        float64        `json:"renderRadius,omitempty"`
	Color               string         `json:"color"`
	ParentID            string         `json:"parentId,omitempty"`
	Orbit               *OrbitElements `json:"orbit,omitempty"`
	AxialTiltDeg        float64        `json:"axialTiltDeg,omitempty"`
	RotationPeriodHours float64        `json:"rotationPeriodHours,omitempty"`
	Ring                *ringJSON      `json:"ring,omitempty"`
	OrbitScale          float64        `json:"orbitScale,omitempty"`
	InitialRotationDeg  float64        `json:"initialRotationDeg,omitempty"`
}

func (b bodyJSON) definition() (BodyDefinition, error) {
	cat, err := CategoryFromString(b.Type)
	if err != nil {
		return BodyDefinition{}, fmt.Errorf("body '%s': %w", b.ID, err)
	}
	col, err := colorful.Hex(b.Color)
	if err != nil {
		return BodyDefinition{}, fmt.Errorf("body '%s': invalid color '%s': %w", b.ID, b.Color, err)
	}
	d := BodyDefinition{
		ID:                  b.ID,
		Name:                b.Name,
		Category:            cat,
		RadiusKm:            b.RadiusKm,
		RenderRadius:        b.RenderRadius,
		Color:               col,
		ParentID:            b.ParentID,
		Orbit:               b.Orbit,
		AxialTiltDeg:        b.AxialTiltDeg,
		RotationPeriodHours: b.RotationPeriodHours,
		OrbitScale:          b.OrbitScale,
		InitialRotationDeg:  b.InitialRotationDeg,
	}
	if b.Ring != nil {
		ring := &RingSpec{InnerScale: b.Ring.InnerScale, OuterScale: b.Ring.OuterScale, Opacity: b.Ring.Opacity, NodeDeg: b.Ring.NodeDeg}
		if b.Ring.Color != "" {
			if ring.Color, err = colorful.Hex(b.Ring.Color); err != nil {
				return BodyDefinition{}, fmt.Errorf("body '%s': invalid ring color '%s': %w", b.ID, b.Ring.Color, err)
			}
		}
		d.Ring = ring
	}
	return d, nil
}

func toJSON(d BodyDefinition) bodyJSON {
	b := bodyJSON{
		ID:                  d.ID,
		Name:                d.Name,
		Type:                d.Category.String(),
		RadiusKm:            d.RadiusKm,
		RenderRadius:        d.RenderRadius,
		Color:               d.Color.Hex(),
		ParentID:            d.ParentID,
		Orbit:               d.Orbit,
		AxialTiltDeg:        d.AxialTiltDeg,
		RotationPeriodHours: d.RotationPeriodHours,
		OrbitScale:          d.OrbitScale,
		InitialRotationDeg:  d.InitialRotationDeg,
	}
	if r := d.Ring; r != nil {
		b.Ring = &ringJSON{InnerScale: r.InnerScale, OuterScale: r.OuterScale, Color: r.Color.Hex(), Opacity: r.Opacity, NodeDeg: r.NodeDeg}
	}
	return b
}

// ReadCatalogue decodes and validates a JSON catalogue.
func ReadCatalogue(r io.Reader) (*Catalogue, error) {
	var f catalogueFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode catalogue: %w", err)
	}
	if f.Version != CatalogueVersion {
		return nil, fmt.Errorf("unsupported catalogue version '%s'", f.Version)
	}
	defs := make([]BodyDefinition, len(f.Bodies))
	for i, b := range f.Bodies {
		d, err := b.definition()
		if err != nil {
			return nil, err
		}
		defs[i] = d
	}
	return NewCatalogue(defs)
}

// WriteJSON encodes the catalogue, parents first, with colours as #rrggbb.
func (c *Catalogue) WriteJSON(w io.Writer, name string) error {
	f := catalogueFile{Version: CatalogueVersion, Name: name, Bodies: make([]bodyJSON, len(c.defs))}
	for i, d := range c.defs {
		f.Bodies[i] = toJSON(d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// TrajectoryState is one record of a trajectory file.
type TrajectoryState struct {
	JD       float64
	Position mgl64.Vec3
}

// FromText initializes from a record of four fields.
func (s *TrajectoryState) FromText(record []string) error {
	if len(record) != 4 {
		return fmt.Errorf("expected 4 fields, got %d", len(record))
	}
	var vals [4]float64
	for i, f := range record {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	s.JD = vals[0]
	s.Position = mgl64.Vec3{vals[1], vals[2], vals[3]}
	return nil
}

// ToText converts to text for written output.
func (s TrajectoryState) ToText() []string {
	return []string{
		strconv.FormatFloat(s.JD, 'f', 6, 64),
		strconv.FormatFloat(s.Position[0], 'f', 6, 64),
		strconv.FormatFloat(s.Position[1], 'f', 6, 64),
		strconv.FormatFloat(s.Position[2], 'f', 6, 64),
	}
}

// WriteTrajectory writes the states of a body as space separated records
// preceded by a commented header.
func WriteTrajectory(w io.Writer, body string, created time.Time, states iter.Seq[TrajectoryState]) error {
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s
# Body: %s
# Records are <jd> <x> <y> <z>
#   Time is a UTC Julian date
#   Position in scene units, world axes
`, created.UTC(), body); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	for s := range states {
		if err := cw.Write(s.ToText()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseTrajectory reads the records written by WriteTrajectory.
func ParseTrajectory(r io.Reader) ([]TrajectoryState, error) {
	var states []TrajectoryState
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.Comment = '#'
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return states, nil
		}
		if err != nil {
			return nil, err
		}
		var s TrajectoryState
		if err := s.FromText(record); err != nil {
			return nil, fmt.Errorf("line %d: %w", len(states)+1, err)
		}
		states = append(states, s)
	}
}
