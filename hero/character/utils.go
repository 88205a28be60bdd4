package character

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// intensityLabel names unknown intensities after the cost they are charged at
func intensityLabel(i Intensity) string {
	if i.Valid() {
		return string(i)
	}
	return string(DefaultIntensity)
}
