package mdtty

import "bytes"

// StripFrontMatter removes a leading front matter block (YAML ---, TOML
// +++, or JSON ;;;) from src and returns the remainder. Input without a
// recognizable front matter block is returned unchanged. The opening
// delimiter must be the first line and the second line must look like
// metadata; without a closing delimiter the block is not front matter and
// the input passes through unchanged.
func StripFrontMatter(src []byte) []byte {
	openLine, next := frontMatterLine(src, 0)
	delim, ok := frontMatterDelimiter(openLine)
	if !ok {
		return src
	}
	metaLine, metaNext := frontMatterLine(src, next)
	if !frontMatterMetadataLikely(metaLine) {
		return src
	}
	for idx := metaNext; idx <= len(src); {
		line, lineNext := frontMatterLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[lineNext:]
		}
		if lineNext <= idx {
			break
		}
		idx = lineNext
	}
	// Opened like front matter but never closed; the document owns those
	// lines after all.
	return src
}

func frontMatterLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsRune(trimmed, ':') || bytes.ContainsRune(trimmed, '=')
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
