package itinerary

// Emittable reports whether it is part of the output: valid, and maximal
// unless sub-itineraries are requested.
func Emittable(it Itinerary, includeSub bool) bool {
	return it.Valid && (it.Maximal || includeSub)
}

// Select returns, in creation order, the handles of every emittable
// itinerary. With includeSub false only the longest chains are kept; with
// includeSub true their valid prefixes are kept as well.
func (s *Set) Select(includeSub bool) []Handle {
	var out []Handle
	for h, it := range s.All() {
		if Emittable(it, includeSub) {
			out = append(out, h)
		}
	}

	return out
}

// Views resolves the result of Select.
func (s *Set) Views(includeSub bool) []View {
	hs := s.Select(includeSub)
	out := make([]View, len(hs))
	for i, h := range hs {
		out[i] = s.View(h)
	}

	return out
}
