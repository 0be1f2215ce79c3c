package protocol

// Patch replaces the document region identified by Target with new HTML.
// An empty Target means the whole mounted tree. Seq orders patches so the
// client can detect gaps after a reconnect.
type Patch struct {
	Seq    uint64
	Target string
	HTML   string
}

// EncodePatch serializes a patch payload.
func EncodePatch(p *Patch) []byte {
	e := NewEncoder()
	e.WriteUvarint(p.Seq)
	e.WriteString(p.Target)
	e.WriteString(p.HTML)
	return e.Bytes()
}

// DecodePatch parses a patch payload.
func DecodePatch(data []byte) (*Patch, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	target, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	html, err := d.ReadString()
	if err != nil {
		return nil, err
	}

	return &Patch{Seq: seq, Target: target, HTML: html}, nil
}
