package hl7

// Header summarises the first MSH segment. Positions are 0-based into
// Segment.Fields, where Fields[0] is the encoding characters (MSH-2).
type Header struct {
	SendingApp      string
	SendingFacility string
	Timestamp       string
	MessageType     string
	ControlID       string
	Version         string
}

func ExtractHeader(m *Message) Header {
	h := Header{
		SendingApp:      Unknown,
		SendingFacility: Unknown,
		Timestamp:       Unknown,
		MessageType:     Unknown,
		ControlID:       Unknown,
		Version:         Unknown,
	}
	if m == nil {
		return h
	}
	for _, seg := range m.Segments {
		if seg.Name != "MSH" {
			continue
		}
		h.SendingApp = fieldOrUnknown(seg, 1)
		h.SendingFacility = fieldOrUnknown(seg, 2)
		h.Timestamp = fieldOrUnknown(seg, 5)
		h.MessageType = fieldOrUnknown(seg, 7)
		h.ControlID = fieldOrUnknown(seg, 8)
		h.Version = fieldOrUnknown(seg, 10)
		break
	}
	return h
}
