package canvas

// Invert replaces every color channel v with 255-v. Alpha is untouched.
func (s *Surface) Invert() {
	if s == nil {
		return
	}
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = 255 - pix[i]
		pix[i+1] = 255 - pix[i+1]
		pix[i+2] = 255 - pix[i+2]
	}
}

// FlipHorizontal mirrors the surface left to right in place.
func (s *Surface) FlipHorizontal() {
	if s == nil {
		return
	}
	w, h := s.Width(), s.Height()
	pix := s.img.Pix
	stride := s.img.Stride
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lo, ro := l*4, r*4
			row[lo], row[ro] = row[ro], row[lo]
			row[lo+1], row[ro+1] = row[ro+1], row[lo+1]
			row[lo+2], row[ro+2] = row[ro+2], row[lo+2]
			row[lo+3], row[ro+3] = row[ro+3], row[lo+3]
		}
	}
}

// FlipVertical mirrors the surface top to bottom in place.
func (s *Surface) FlipVertical() {
	if s == nil {
		return
	}
	w, h := s.Width(), s.Height()
	pix := s.img.Pix
	stride := s.img.Stride
	tmp := make([]byte, w*4)
	for t, b := 0, h-1; t < b; t, b = t+1, b-1 {
		top := pix[t*stride : t*stride+w*4]
		bottom := pix[b*stride : b*stride+w*4]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
