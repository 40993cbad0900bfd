package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for persisted types. Written by hand in the
// generator's layout: one serializer value per type, fields in
// declaration order, timestamps as Unix microseconds.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// ConfigEntryMUS serializes ConfigEntry values.
var ConfigEntryMUS = configEntryMUS{}

type configEntryMUS struct{}

func (configEntryMUS) Marshal(e ConfigEntry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Title, bs[n:])
	n += ord.String.Marshal(e.APIKey, bs[n:])
	n += ord.String.Marshal(e.AssistantID, bs[n:])
	n += varint.Int64.Marshal(e.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(e.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (configEntryMUS) Unmarshal(bs []byte) (e ConfigEntry, n int, err error) {
	var n1 int
	e.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.APIKey, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.AssistantID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.CreatedAt = time.UnixMicro(micros).UTC()
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.UpdatedAt = time.UnixMicro(micros).UTC()
	return
}

func (configEntryMUS) Size(e ConfigEntry) (size int) {
	size = ord.String.Size(e.Id)
	size += ord.String.Size(e.Title)
	size += ord.String.Size(e.APIKey)
	size += ord.String.Size(e.AssistantID)
	size += varint.Int64.Size(e.CreatedAt.UnixMicro())
	size += varint.Int64.Size(e.UpdatedAt.UnixMicro())
	return size
}

func (configEntryMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for i := 0; i < 2; i++ {
		n1, err = varint.Int64.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
