package feature

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type vectorAlias Vector

type vectorJSON struct {
	vectorAlias
	Volume      jsonFloat `json:"volume"`
	SurfaceArea jsonFloat `json:"surfaceArea"`
	Compactness jsonFloat `json:"compactness"`
	AspectRatio jsonFloat `json:"aspectRatio"`
}

// MarshalJSON encodes v with its real-valued descriptors as numbers, or as
// the string "Infinity" where they are infinite: flat and line-like meshes
// have an infinite aspect ratio, and huge meshes can overflow volume and area.
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(vectorJSON{
		vectorAlias: vectorAlias(v),
		Volume:      jsonFloat(v.Volume),
		SurfaceArea: jsonFloat(v.SurfaceArea),
		Compactness: jsonFloat(v.Compactness),
		AspectRatio: jsonFloat(v.AspectRatio),
	})
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var aux vectorJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*v = Vector(aux.vectorAlias)
	v.Volume = float64(aux.Volume)
	v.SurfaceArea = float64(aux.SurfaceArea)
	v.Compactness = float64(aux.Compactness)
	v.AspectRatio = float64(aux.AspectRatio)
	return nil
}

// jsonFloat is a float64 that survives JSON with non-finite values.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsInf(x, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "Infinity":
			*f = jsonFloat(math.Inf(1))
		case "-Infinity":
			*f = jsonFloat(math.Inf(-1))
		case "NaN":
			*f = jsonFloat(math.NaN())
		default:
			return fmt.Errorf("feature: invalid float %q", s)
		}
		return nil
	}

	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*f = jsonFloat(x)
	return nil
}
