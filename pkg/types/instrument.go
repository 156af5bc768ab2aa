package types

import "strings"

// InstrumentClass identifies the family of the source instrument. The
// controlling database owns these values; this package only needs the
// spelling and a couple of per-class policies.
type InstrumentClass string

const (
	InstrumentUnknown    InstrumentClass = "Unknown"
	FinniganIonTrap      InstrumentClass = "Finnigan_Ion_Trap"
	LTQFT                InstrumentClass = "LTQ_FT"
	TripleQuad           InstrumentClass = "Triple_Quad"
	ThermoExactive       InstrumentClass = "Thermo_Exactive"
	BrukerFTBAF          InstrumentClass = "BrukerFT_BAF"
	BrukerTOFBAF         InstrumentClass = "BrukerTOF_BAF"
	BrukerMALDIImaging   InstrumentClass = "BrukerMALDI_Imaging"
	BrukerMALDIImagingV2 InstrumentClass = "BrukerMALDI_Imaging_V2"
	BrukerMALDISpot      InstrumentClass = "BrukerMALDI_Spot"
	IMSAgilentTOFUIMF    InstrumentClass = "IMS_Agilent_TOF_UIMF"
	IMSAgilentTOFDotD    InstrumentClass = "IMS_Agilent_TOF_DotD"
	AgilentTOFV2         InstrumentClass = "Agilent_TOF_V2"
	TimsTOF              InstrumentClass = "TimsTOF"
)

// directoryPreferredClasses lists the instrument families whose native
// acquisition format is a directory, so the search checks directories before
// loose files. Membership is data: adding a class is an edit here, not a
// code change in the search tool.
var directoryPreferredClasses = map[InstrumentClass]struct{}{
	BrukerFTBAF:          {},
	BrukerTOFBAF:         {},
	BrukerMALDIImaging:   {},
	BrukerMALDIImagingV2: {},
	BrukerMALDISpot:      {},
	IMSAgilentTOFUIMF:    {},
	IMSAgilentTOFDotD:    {},
	AgilentTOFV2:         {},
	TimsTOF:              {},
}

// directoryTypeRefinements retags a plain directory match for classes whose
// directories carry a more specific meaning.
var directoryTypeRefinements = map[InstrumentClass]DatasetType{
	BrukerMALDIImaging:   BrukerImaging,
	BrukerMALDIImagingV2: BrukerImaging,
	BrukerMALDISpot:      BrukerSpot,
}

// DirectoryPreferred reports whether the class's raw data is directory-based
func (c InstrumentClass) DirectoryPreferred() bool {
	_, ok := directoryPreferredClasses[c]
	return ok
}

// DirectoryDatasetType returns the refined dataset type for a directory
// match, if the class defines one.
func (c InstrumentClass) DirectoryDatasetType() (DatasetType, bool) {
	t, ok := directoryTypeRefinements[c]
	return t, ok
}

// KnownInstrumentClasses returns every class this package recognizes
func KnownInstrumentClasses() []InstrumentClass {
	return []InstrumentClass{
		InstrumentUnknown,
		FinniganIonTrap,
		LTQFT,
		TripleQuad,
		ThermoExactive,
		BrukerFTBAF,
		BrukerTOFBAF,
		BrukerMALDIImaging,
		BrukerMALDIImagingV2,
		BrukerMALDISpot,
		IMSAgilentTOFUIMF,
		IMSAgilentTOFDotD,
		AgilentTOFV2,
		TimsTOF,
	}
}

// ParseInstrumentClass matches a class name case-insensitively, returning
// InstrumentUnknown for anything unrecognized (the database may carry classes
// this agent has no policy for; they default to file-preferred).
func ParseInstrumentClass(name string) InstrumentClass {
	for _, c := range KnownInstrumentClasses() {
		if strings.EqualFold(string(c), name) {
			return c
		}
	}
	return InstrumentUnknown
}
