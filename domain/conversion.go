package domain

// SourceColumn describes how one destination column is obtained from a
// source domain: a direct column copy, a computed value, or nothing (the
// missing-value sentinel).
type SourceColumn struct {
	// Direct is true when the destination variable exists verbatim in the
	// source; Source then holds its address there.
	Direct bool
	Source Address

	// Compute derives the value from a full source row when the variable
	// does not exist verbatim. Nil when no computation is possible.
	Compute ComputeFunc
}

// Conversion maps every column of a destination domain onto a source
// domain. Assembled once per distinct (source, destination) pair and then
// applied per row or per column group.
type Conversion struct {
	Source *Domain
	Target *Domain

	Attributes []SourceColumn
	ClassVars  []SourceColumn
	Metas      []SourceColumn
}

// ConversionFrom returns the conversion mapping src columns onto d,
// building and caching it on first use.
func (d *Domain) ConversionFrom(src *Domain) *Conversion {
	if c, ok := d.conversions[src]; ok {
		return c
	}
	c := &Conversion{Source: src, Target: d}

	// Anonymous domains of matching shape are structurally compatible:
	// columns map positionally, identity lookup is skipped.
	positional := d.anonymous && src.anonymous && d.SameShape(src)

	mapGroup := func(vars []Variable, place Place) []SourceColumn {
		out := make([]SourceColumn, len(vars))
		for i, v := range vars {
			if positional {
				out[i] = SourceColumn{Direct: true, Source: Address{Place: place, Index: i}}
				continue
			}
			if a, ok := src.Index(v); ok {
				out[i] = SourceColumn{Direct: true, Source: a}
				continue
			}
			out[i] = SourceColumn{Compute: v.Compute}
		}
		return out
	}
	c.Attributes = mapGroup(d.attributes, PlaceFeature)
	c.ClassVars = mapGroup(d.classVars, PlaceClass)
	c.Metas = mapGroup(d.metas, PlaceMeta)

	d.conversions[src] = c
	return c
}

// SamePlace reports whether every mapped column of the group is a direct
// copy out of one physical container, and which container that is. This is
// the bulk-gather fast path: when it holds, the whole group can be read
// with one indexed pass over a single container.
func SamePlace(group []SourceColumn) (Place, bool) {
	if len(group) == 0 {
		return PlaceFeature, false
	}
	place := PlaceFeature
	for i, sc := range group {
		if !sc.Direct {
			return place, false
		}
		if i == 0 {
			place = sc.Source.Place
		} else if sc.Source.Place != place {
			return place, false
		}
	}
	return place, true
}
