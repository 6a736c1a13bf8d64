package rw

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Little-endian binary reader/writer for navmesh data files.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
}

func NewNavMeshDataBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewNavMeshDataBinReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

func (w *ReaderWriter) WriteUInt8(value uint8) {
	w.rw.WriteByte(value)
}

func (w *ReaderWriter) WriteUInt16(value uint16) {
	w.order.PutUint16(w.dataBuf[:2], value)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt32(value uint32) {
	w.order.PutUint32(w.dataBuf[:4], value)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteUInt32s(value []uint32) {
	for _, v := range value {
		w.WriteUInt32(v)
	}
}

func (w *ReaderWriter) WriteFloat32(value float32) {
	w.WriteUInt32(math.Float32bits(value))
}

func (w *ReaderWriter) WriteFloat32s(value []float32) {
	for _, v := range value {
		w.WriteFloat32(v)
	}
}

func (w *ReaderWriter) WriteString(value string) {
	w.rw.WriteString(value)
}

func (w *ReaderWriter) PadZero(n int) {
	for i := 0; i < n; i++ {
		w.rw.WriteByte(0)
	}
}

func (w *ReaderWriter) GetWriteBytes() []byte {
	return w.rw.Bytes()
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	v, err := w.rw.ReadByte()
	if err != nil {
		panic(err)
	}
	return v
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	w.read(2)
	return w.order.Uint16(w.dataBuf[:2])
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	w.read(4)
	return w.order.Uint32(w.dataBuf[:4])
}

func (w *ReaderWriter) ReadUInt32s(value []uint32) {
	for i := range value {
		value[i] = w.ReadUInt32()
	}
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) Skip(n int) {
	for i := 0; i < n; i++ {
		_, err := w.rw.ReadByte()
		if err != nil {
			panic(err)
		}
	}
}

func (w *ReaderWriter) Len() int {
	return w.rw.Len()
}

func (w *ReaderWriter) read(n int) {
	// bytes.Buffer.Read returns short counts without an error, so a plain
	// Read would leave stale scratch bytes in dataBuf on truncated input.
	_, err := io.ReadFull(&w.rw, w.dataBuf[:n])
	if err != nil {
		panic(err)
	}
}
