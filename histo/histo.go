//Package histo implements simple histograms with explicit bin dividers.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i collects the values v with
// dividers[i] <= v < dividers[i+1]. Values outside the dividers are omitted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil, in which case an empty histogram is created.
// Neither slice is modified or retained. It panics if there are fewer
// than 2 dividers or if they are not sorted.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("gopimc/histo.NewData: at least 2 sorted dividers are needed")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.rehisto(rawdata)
	}
	return d
}

func (D *Data) rehisto(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histogram panics on values out of the dividers, so they go first.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(D.histo, D.dividers, data, nil)
}

// AddData adds the given data point(s) to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//index of the first divider larger than v
		i := sort.Search(len(D.dividers), func(j int) bool { return D.dividers[j] > v })
		D.histo[i-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Total returns the number of data points in the histogram.
func (D *Data) Total() int {
	return D.total
}

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides every bin by the total number of data points.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize reverts Normalize.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// View returns the bins of the histogram. Changes to it change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Copy returns a copy of the bins. If dest is given and long enough, it is used.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := copySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

// Dividers returns a copy of the dividers.
func (D *Data) Dividers(dest ...[]float64) []float64 {
	d := copySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

// Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// String prints a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gopimc/histo: %d bins for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

func copySlice(N int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) >= N {
		return dest[0][:N]
	}
	return make([]float64, N)
}
