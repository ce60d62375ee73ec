// Package dataset holds the static district → sub-district → estate mapping
// that the lookup controller reads from. A Dataset is immutable once built;
// every accessor degrades to an empty value instead of failing when a
// district or sub-district is missing.
package dataset

// Record is a sub-district (pianqu) and the estates it contains, in source order.
type Record struct {
	Name    string   `json:"name" yaml:"name"`
	Estates []string `json:"estates" yaml:"estates"`
}

// District pairs a district name with its sub-district records.
type District struct {
	Name    string
	Records []Record
}

// Dataset is a read-only mapping from district name to ordered records.
// Go maps lose key order, so the source order of districts is kept alongside.
type Dataset struct {
	order   []string
	records map[string][]Record
}

// New builds a dataset from districts in display order. A repeated district
// name replaces the earlier records but keeps its first position.
func New(districts []District) *Dataset {
	ds := &Dataset{records: make(map[string][]Record, len(districts))}
	for _, d := range districts {
		ds.put(d.Name, d.Records)
	}
	return ds
}

// Empty returns a dataset without districts.
func Empty() *Dataset {
	return New(nil)
}

func (ds *Dataset) put(name string, records []Record) {
	if _, ok := ds.records[name]; !ok {
		ds.order = append(ds.order, name)
	}
	ds.records[name] = cloneRecords(records)
}

// Districts returns district names in source order.
func (ds *Dataset) Districts() []string {
	if ds == nil {
		return nil
	}
	out := make([]string, len(ds.order))
	copy(out, ds.order)
	return out
}

// Has reports whether the district exists.
func (ds *Dataset) Has(district string) bool {
	if ds == nil {
		return false
	}
	_, ok := ds.records[district]
	return ok
}

// Records returns the sub-district records of a district, or nil when absent.
// The returned slice must not be modified.
func (ds *Dataset) Records(district string) []Record {
	if ds == nil {
		return nil
	}
	return ds.records[district]
}

// Count returns the number of sub-districts in a district.
func (ds *Dataset) Count(district string) int {
	return len(ds.Records(district))
}

// Record finds a sub-district by name within a district.
func (ds *Dataset) Record(district, pianqu string) (Record, bool) {
	for _, r := range ds.Records(district) {
		if r.Name == pianqu {
			return r, true
		}
	}
	return Record{}, false
}

// Pianqus returns the sub-district names of a district in source order.
func (ds *Dataset) Pianqus(district string) []string {
	records := ds.Records(district)
	if len(records) == 0 {
		return nil
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of districts.
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.order)
}

func cloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	dup := make([]Record, len(records))
	for i, r := range records {
		dup[i] = Record{Name: r.Name, Estates: append([]string(nil), r.Estates...)}
	}
	return dup
}
