package histo

import (
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHistoBins(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1, -1}
	orig := make([]float64, len(rawdata))
	copy(orig, rawdata)
	H := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata)
	expected := []float64{2, 6, 2, 7, 9}
	if !floats.Equal(H.View(), expected) {
		Te.Errorf("bins %v, expected %v", H.View(), expected)
	}
	//44, 32, 8 and -1 are out
	if H.Total() != len(rawdata)-4 {
		Te.Errorf("total %d, expected %d", H.Total(), len(rawdata)-4)
	}
	if !floats.Equal(rawdata, orig) {
		Te.Errorf("NewData modified the raw data")
	}
}

func TestHistoAddNormalize(Te *testing.T) {
	H := NewData([]float64{0.5, 1.5, 2.5, 3.5}, nil)
	H.AddData(1, 1, 2, 3, 4)
	if !floats.Equal(H.View(), []float64{2, 1, 1}) {
		Te.Errorf("bins %v", H.View())
	}
	H.Normalize()
	if !H.Normalized() || !floats.EqualApprox(H.View(), []float64{0.5, 0.25, 0.25}, 1e-12) {
		Te.Errorf("normalized bins %v", H.View())
	}
	H.AddData(3)
	if !H.Normalized() || !floats.EqualApprox(H.View(), []float64{0.4, 0.2, 0.4}, 1e-12) {
		Te.Errorf("bins after adding to a normalized histogram %v", H.View())
	}
	H.UnNormalize()
	if s := H.Sum(); math.Abs(s-5) > 1e-9 {
		Te.Errorf("sum %v, expected 5", s)
	}
}

func TestHistoIO(Te *testing.T) {
	H := NewData([]float64{0, 1, 2, 3, 4, 8}, []float64{1, 6, 3, 2, 4, 5, 7})
	j, err := json.Marshal(H)
	if err != nil {
		Te.Fatal(err)
	}
	H2 := new(Data)
	if err := json.Unmarshal(j, H2); err != nil {
		Te.Fatal(err)
	}
	if H2.Total() != H.Total() || !floats.Equal(H2.View(), H.View()) || !floats.Equal(H2.Dividers(), H.Dividers()) {
		Te.Errorf("histogram changed after JSON round trip:\n%s\n%s", H, H2)
	}
	if err := json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), H2); err == nil {
		Te.Errorf("expected an error for bins that don't match the dividers")
	}
}
