package actor

// scriptRand replays fixed draws, then repeats rest; Shuffle is the identity
type scriptRand struct {
	vals     []float64
	rest     float64
	i        int
	shuffles int
}

func (s *scriptRand) Float64() float64 {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.rest
}

func (s *scriptRand) Shuffle(n int, swap func(i, j int)) {
	s.shuffles++
}

// effectRecorder captures played effect names
type effectRecorder struct {
	played []string
}

func (r *effectRecorder) PlayEffect(name string) {
	r.played = append(r.played, name)
}

func (r *effectRecorder) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}
