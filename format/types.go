package format

type (
	// Version identifies a JSON-stat wire format version.
	Version uint8
	// Class identifies the JSON-stat document class.
	Class uint8
	// Naming selects how categories and columns are named when decoding.
	Naming uint8
	// OutputFormat selects the serialization target of a write operation.
	OutputFormat uint8
)

const (
	V1_3 Version = 0x1 // V1_3 represents the legacy 1.3 bundle envelope.
	V2_0 Version = 0x2 // V2_0 represents the flat 2.0 dataset envelope.

	ClassDataset    Class = 0x1 // ClassDataset represents a dataset document.
	ClassCollection Class = 0x2 // ClassCollection represents a collection document.
	ClassDimension  Class = 0x3 // ClassDimension represents a standalone dimension document.

	NamingLabel Naming = 0x1 // NamingLabel names categories and columns by display label.
	NamingID    Naming = 0x2 // NamingID names categories and columns by identifier.

	OutputJSON      OutputFormat = 0x1 // OutputJSON serializes a document to JSON-stat text.
	OutputTable     OutputFormat = 0x2 // OutputTable decodes a document into a flat table.
	OutputTableList OutputFormat = 0x3 // OutputTableList unnests a collection into flat tables.
)

func (v Version) String() string {
	switch v {
	case V1_3:
		return "1.3"
	case V2_0:
		return "2.0"
	default:
		return "Unknown"
	}
}

func (c Class) String() string {
	switch c {
	case ClassDataset:
		return "dataset"
	case ClassCollection:
		return "collection"
	case ClassDimension:
		return "dimension"
	default:
		return "Unknown"
	}
}

func (n Naming) String() string {
	switch n {
	case NamingLabel:
		return "label"
	case NamingID:
		return "id"
	default:
		return "Unknown"
	}
}

func (f OutputFormat) String() string {
	switch f {
	case OutputJSON:
		return "jsonstat"
	case OutputTable:
		return "table"
	case OutputTableList:
		return "table_list"
	default:
		return "Unknown"
	}
}

// Valid reports whether the naming mode is one of the supported values.
func (n Naming) Valid() bool {
	return n == NamingLabel || n == NamingID
}
