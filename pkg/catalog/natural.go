package catalog

import "unicode"

// naturalLess compares strings treating digit runs as numbers,
// so "img2.jpg" < "img10.jpg"
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		c1, c2 := s1[i], s2[j]
		if isDigit(c1) && isDigit(c2) {
			start1 := i
			for i < len(s1) && isDigit(s1[i]) {
				i++
			}
			start2 := j
			for j < len(s2) && isDigit(s2[j]) {
				j++
			}
			n1, n2 := trimZeros(s1[start1:i]), trimZeros(s2[start2:j])
			if len(n1) != len(n2) {
				return len(n1) < len(n2)
			}
			if n1 != n2 {
				return n1 < n2
			}
			continue
		}
		if c1 != c2 {
			return c1 < c2
		}
		i++
		j++
	}
	return len(s1)-i < len(s2)-j
}

func isDigit(c byte) bool {
	return unicode.IsDigit(rune(c))
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
