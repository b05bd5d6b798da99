package finfo

import "github.com/simonhull/finfo/internal/types"

// Record is one decoded block. The concrete type is one of the record
// types below; the set is closed.
type Record = types.Record

// BlockHeader describes the position, type and length of a block.
type BlockHeader = types.BlockHeader

// RawUnknown holds a block of a type without a decoder.
type RawUnknown = types.RawUnknown

// FLAC records.
type (
	StreamInfo      = types.StreamInfo
	Padding         = types.Padding
	Application     = types.Application
	SeekTable       = types.SeekTable
	SeekPoint       = types.SeekPoint
	VorbisComment   = types.VorbisComment
	CommentField    = types.CommentField
	Cuesheet        = types.Cuesheet
	CuesheetTrack   = types.CuesheetTrack
	TrackIndexPoint = types.TrackIndexPoint
	Picture         = types.Picture
	PictureType     = types.PictureType
)

// PNG records.
type (
	ImageHeader  = types.ImageHeader
	Palette      = types.Palette
	RGB          = types.RGB
	ImageData    = types.ImageData
	ImageTrailer = types.ImageTrailer
	TextChunk    = types.TextChunk
	ChunkType    = types.ChunkType
)
