package repositories

import (
	"chat-poll/domain"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the stored records. They are part of the on-disk format:
// never renumber, only append.
const (
	messageFieldID        protowire.Number = 1
	messageFieldSender    protowire.Number = 2
	messageFieldRecipient protowire.Number = 3
	messageFieldContent   protowire.Number = 4
	messageFieldCreatedAt protowire.Number = 5

	groupFieldID        protowire.Number = 1
	groupFieldName      protowire.Number = 2
	groupFieldCreator   protowire.Number = 3
	groupFieldCreatedAt protowire.Number = 4
)

func marshalMessage(m domain.Message) []byte {
	var b []byte
	b = protowire.AppendTag(b, messageFieldID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.ID))
	b = protowire.AppendTag(b, messageFieldSender, protowire.BytesType)
	b = protowire.AppendString(b, m.Sender)
	b = protowire.AppendTag(b, messageFieldRecipient, protowire.BytesType)
	b = protowire.AppendString(b, m.Recipient.Key())
	b = protowire.AppendTag(b, messageFieldContent, protowire.BytesType)
	b = protowire.AppendString(b, m.Content)
	b = protowire.AppendTag(b, messageFieldCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.CreatedAt.UnixNano()))
	return b
}

func unmarshalMessage(b []byte) (domain.Message, error) {
	var (
		m            domain.Message
		recipientKey string
	)
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == messageFieldID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.ID = domain.MessageID(v)
			return n, nil
		case num == messageFieldSender && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Sender = v
			return n, nil
		case num == messageFieldRecipient && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			recipientKey = v
			return n, nil
		case num == messageFieldContent && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Content = v
			return n, nil
		case num == messageFieldCreatedAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.CreatedAt = time.Unix(0, int64(v)).UTC()
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	m.Recipient, err = domain.ParseRecipient(recipientKey)
	if err != nil {
		return domain.Message{}, fmt.Errorf("message %s: %w", m.ID, err)
	}
	return m, nil
}

func marshalGroup(g domain.Group) []byte {
	var b []byte
	b = protowire.AppendTag(b, groupFieldID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.ID))
	b = protowire.AppendTag(b, groupFieldName, protowire.BytesType)
	b = protowire.AppendString(b, g.Name)
	b = protowire.AppendTag(b, groupFieldCreator, protowire.BytesType)
	b = protowire.AppendString(b, g.Creator)
	b = protowire.AppendTag(b, groupFieldCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.CreatedAt.UnixNano()))
	return b
}

func unmarshalGroup(b []byte) (domain.Group, error) {
	var g domain.Group
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == groupFieldID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.ID = domain.GroupID(v)
			return n, nil
		case num == groupFieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			g.Name = v
			return n, nil
		case num == groupFieldCreator && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			g.Creator = v
			return n, nil
		case num == groupFieldCreatedAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.CreatedAt = time.Unix(0, int64(v)).UTC()
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return g, err
}

// consumeFields walks a protobuf wire buffer and hands each field value to fn,
// which returns how many bytes it consumed. Unknown fields are skipped.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}
