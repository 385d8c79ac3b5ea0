package sexp

// Scanners for simple-string literals (spec.md §4.3). Every scanner
// assumes one-character lookahead in InputStream.NextChar and never
// returns before reading the first byte after its token, so the caller's
// lookahead is always valid on return.

// scanToken appends token-chars to a fresh buffer after skipping leading
// whitespace. May return zero bytes; the caller is responsible for
// having checked the dispatch condition first (spec.md §9: tokens may
// not start with a digit, enforced at dispatch, not here).
func (s *InputStream) scanToken() ([]byte, error) {
	if err := s.SkipWhitespace(); err != nil {
		return nil, err
	}
	var buf []byte
	for s.nextChar != eofChar && isTokenChar(byte(s.nextChar)) {
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// scanDecimalLength reads the non-negative integer formed by consecutive
// decimal digits at the current position. More than 9 digits is an
// overflow guard (spec.md §4.3).
func (s *InputStream) scanDecimalLength() (int64, error) {
	var value int64
	digits := 0
	for s.nextChar != eofChar && isDecDigit(byte(s.nextChar)) {
		digits++
		if digits > 9 {
			return 0, fatalf(s.count, KindOverlongDecimal, "decimal number %d... too long", value)
		}
		value = value*10 + int64(decValue(byte(s.nextChar)))
		if err := s.GetChar(); err != nil {
			return 0, err
		}
	}
	return value, nil
}

// scanVerbatim consumes ':' then exactly length raw bytes. length must
// be >= 0; the -1 sentinel (no declared length) is a fatal error.
func (s *InputStream) scanVerbatim(length int64) ([]byte, error) {
	if err := s.skipChar(':'); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fatalf(s.count, KindExpectedChar, "verbatim string had no declared length")
	}
	buf := make([]byte, 0, length)
	for i := int64(0); i < length; i++ {
		if s.nextChar == eofChar {
			return nil, fatalf(s.count, KindUnexpectedEOF, "unexpected end of stream in verbatim string")
		}
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// scanQuoted consumes the opening '"' and reads bytes until an
// unescaped '"'. See DESIGN.md's Open Question resolution for the
// indefinite-length (declared < 0) termination rule: the first unescaped
// '"' ends the string, full stop, with no length comparison at all.
func (s *InputStream) scanQuoted(declared int64) ([]byte, error) {
	if err := s.skipChar('"'); err != nil {
		return nil, err
	}
	indefinite := declared < 0
	var buf []byte
	for {
		if s.nextChar == eofChar {
			return nil, fatalf(s.count, KindUnexpectedEOF, "unexpected end of stream in quoted string")
		}
		if s.nextChar == '"' {
			if indefinite || int64(len(buf)) == declared {
				if err := s.GetChar(); err != nil {
					return nil, err
				}
				return buf, nil
			}
			return nil, fatalf(s.count, KindMisdeclaredLength,
				"quoted string ended too early, declared length was %d", declared)
		}
		if !indefinite && int64(len(buf)) >= declared {
			return nil, fatalf(s.count, KindMisdeclaredLength,
				"quoted string longer than declared length %d", declared)
		}
		if s.nextChar == '\\' {
			b, skip, err := s.scanQuotedEscape()
			if err != nil {
				return nil, err
			}
			if !skip {
				buf = append(buf, b)
			}
			continue
		}
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
}

// scanQuotedEscape is entered with NextChar == '\\'. It consumes the
// whole escape sequence (including the byte after it, the same way the
// original's bottom-of-loop get_char() does) and returns the decoded
// byte, or skip == true for a line-continuation escape that contributes
// no byte at all.
func (s *InputStream) scanQuotedEscape() (b byte, skip bool, err error) {
	if err = s.GetChar(); err != nil {
		return
	}
	c := s.nextChar

	switch c {
	case 'b':
		b = '\b'
	case 't':
		b = '\t'
	case 'v':
		b = '\v'
	case 'n':
		b = '\n'
	case 'f':
		b = '\f'
	case 'r':
		b = '\r'
	case '"':
		b = '"'
	case '\'':
		b = '\''
	case '\\':
		b = '\\'
	case '\n':
		if err = s.GetChar(); err != nil {
			return
		}
		if s.nextChar == '\r' {
			if err = s.GetChar(); err != nil {
				return
			}
		}
		skip = true
		return
	case '\r':
		if err = s.GetChar(); err != nil {
			return
		}
		if s.nextChar == '\n' {
			if err = s.GetChar(); err != nil {
				return
			}
		}
		skip = true
		return
	default:
		switch {
		case c >= '0' && c <= '7':
			val := 0
			for i := 0; i < 3; i++ {
				if s.nextChar < '0' || s.nextChar > '7' {
					err = fatalf(s.count, KindUnexpectedEOF, "octal character \\%o... too short", val)
					return
				}
				val = (val << 3) | (s.nextChar - '0')
				if i < 2 {
					if err = s.GetChar(); err != nil {
						return
					}
				}
			}
			if val > 255 {
				err = fatalf(s.count, KindIllegalChar, "octal character \\%o... too big", val)
				return
			}
			b = byte(val)
		case c == 'x':
			if err = s.GetChar(); err != nil {
				return
			}
			val := 0
			for i := 0; i < 2; i++ {
				if s.nextChar == eofChar || !isHexDigit(byte(s.nextChar)) {
					err = fatalf(s.count, KindUnexpectedEOF, "hex character \\x%x... too short", val)
					return
				}
				val = (val << 4) | hexValue(byte(s.nextChar))
				if i < 1 {
					if err = s.GetChar(); err != nil {
						return
					}
				}
			}
			b = byte(val)
		default:
			// unknown escape letter: warn, keep the byte as-is (spec.md §4.3).
			s.warnings.add(KindUnknownEscape, s.count, "escape character \\%c unknown", c)
			b = byte(c)
		}
	}

	if err = s.GetChar(); err != nil {
		return
	}
	return
}

// scanHexadecimal switches to 4-bit mode, consumes '#', reads decoded
// bytes until the terminating '#' re-surfaces (in 8-bit mode, per
// spec.md §4.3), and consumes that '#'. A mis-declared length is a
// warning, since hex strings are self-delimited.
func (s *InputStream) scanHexadecimal(declared int64) ([]byte, error) {
	if err := s.SetByteSize(4).skipChar('#'); err != nil {
		return nil, err
	}
	var buf []byte
	for s.nextChar != eofChar && !(s.byteSize == 8 && s.nextChar == '#') {
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
	if s.nextChar == eofChar {
		return nil, fatalf(s.count, KindUnexpectedEOF, "unexpected end of stream in hexadecimal string")
	}
	if err := s.skipChar('#'); err != nil {
		return nil, err
	}
	if declared >= 0 && int64(len(buf)) != declared {
		s.warnings.add(KindMisdeclaredLength, s.count,
			"hexadecimal string has length %d different than declared length %d", len(buf), declared)
	}
	return buf, nil
}

// scanBase64 is the 6-bit-mode sibling of scanHexadecimal, delimited by
// '|'. The wider '}' transport terminator is handled by the parser's
// envelope logic, not here.
func (s *InputStream) scanBase64(declared int64) ([]byte, error) {
	if err := s.SetByteSize(6).skipChar('|'); err != nil {
		return nil, err
	}
	var buf []byte
	for s.nextChar != eofChar && !(s.byteSize == 8 && s.nextChar == '|') {
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
	if s.nextChar == eofChar {
		return nil, fatalf(s.count, KindUnexpectedEOF, "unexpected end of stream in base64 string")
	}
	if err := s.skipChar('|'); err != nil {
		return nil, err
	}
	if declared >= 0 && int64(len(buf)) != declared {
		s.warnings.add(KindMisdeclaredLength, s.count,
			"base64 string has length %d different than declared length %d", len(buf), declared)
	}
	return buf, nil
}

// scanToEOF returns every non-initial-whitespace byte up to end of
// stream; a test/utility path (spec.md §4.3), exposed publicly as
// ParseRemainder in api.go per SPEC_FULL.md's original_source item 2.
func (s *InputStream) scanToEOF() ([]byte, error) {
	if err := s.SkipWhitespace(); err != nil {
		return nil, err
	}
	var buf []byte
	for s.nextChar != eofChar {
		buf = append(buf, byte(s.nextChar))
		if err := s.GetChar(); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ScanSimpleString reads and returns a simple string's raw payload bytes
// from the input stream, dispatching on the initial character per the
// token-priority rule of spec.md §4.3: a decimal digit unconditionally
// starts a length prefix, never a token.
func (s *InputStream) ScanSimpleString() ([]byte, error) {
	if err := s.SkipWhitespace(); err != nil {
		return nil, err
	}

	var (
		payload []byte
		err     error
	)
	switch {
	case s.nextChar != eofChar && isTokenChar(byte(s.nextChar)) && !isDecDigit(byte(s.nextChar)):
		payload, err = s.scanToken()
	case s.nextChar != eofChar && isDecDigit(byte(s.nextChar)):
		var length int64
		length, err = s.scanDecimalLength()
		if err != nil {
			return nil, err
		}
		payload, err = s.scanDelimited(length)
	case s.nextChar == '"' || s.nextChar == '#' || s.nextChar == '|' || s.nextChar == ':':
		payload, err = s.scanDelimited(-1)
	default:
		if s.nextChar == eofChar {
			return nil, fatalf(s.count, KindUnexpectedEOF, "unexpected end of stream")
		}
		if isPrintable(byte(s.nextChar)) {
			return nil, fatalf(s.count, KindIllegalChar,
				"illegal character '%c' (%d decimal)", rune(s.nextChar), s.nextChar)
		}
		return nil, fatalf(s.count, KindIllegalChar, "illegal character %d (decimal)", s.nextChar)
	}
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		s.warnings.add(KindZeroLengthString, s.count, "simple string has zero length")
	}
	return payload, nil
}

func (s *InputStream) scanDelimited(length int64) ([]byte, error) {
	switch s.nextChar {
	case '"':
		return s.scanQuoted(length)
	case '#':
		return s.scanHexadecimal(length)
	case '|':
		return s.scanBase64(length)
	case ':':
		return s.scanVerbatim(length)
	default:
		got := "end of stream"
		if s.nextChar != eofChar {
			got = string(rune(s.nextChar))
		}
		return nil, fatalf(s.count, KindIllegalChar,
			"expected a string delimiter after decimal length, found %q", got)
	}
}
