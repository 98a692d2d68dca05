package gtp

import "encoding/json"

// Upstream entities as explicit optional-field records. Scalars are pointers
// so "absent" is distinguishable from a reported zero or empty string. Each
// record carries an Extra slot holding upstream fields this adapter does not
// model; they survive decode and re-serialize intact.
//
// All records are read-only snapshots scoped to a single tool invocation.

// Target is a pharmacological target (receptor, enzyme, channel, ...).
type Target struct {
	TargetID       *int    `json:"targetId,omitempty"`
	Name           *string `json:"name,omitempty"`
	Abbreviation   *string `json:"abbreviation,omitempty"`
	SystematicName *string `json:"systematicName,omitempty"`
	Type           *string `json:"type,omitempty"`
	FamilyIDs      []int   `json:"familyIds,omitempty"`
	SubunitIDs     []int   `json:"subunitIds,omitempty"`
	ComplexIDs     []int   `json:"complexIds,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (t *Target) UnmarshalJSON(data []byte) error {
	type alias Target
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = Target(a)
	var err error
	t.Extra, err = extraFields(data, t)
	return err
}

func (t Target) MarshalJSON() ([]byte, error) {
	type alias Target
	body, err := json.Marshal(alias(t))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, t.Extra)
}

// Ligand is a chemical entity with its descriptors.
type Ligand struct {
	LigandID       *int     `json:"ligandId,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Abbreviation   *string  `json:"abbreviation,omitempty"`
	INN            *string  `json:"inn,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Species        *string  `json:"species,omitempty"`
	Radioactive    *bool    `json:"radioactive,omitempty"`
	Labelled       *bool    `json:"labelled,omitempty"`
	Approved       *bool    `json:"approved,omitempty"`
	Withdrawn      *bool    `json:"withdrawn,omitempty"`
	ApprovalSource *string  `json:"approvalSource,omitempty"`
	SMILES         *string  `json:"smiles,omitempty"`
	InChIKey       *string  `json:"inchikey,omitempty"`
	MolWeight      *float64 `json:"molWeight,omitempty"`
	LogP           *float64 `json:"logP,omitempty"`
	HBondAcceptors *int     `json:"hBondAcceptors,omitempty"`
	HBondDonors    *int     `json:"hBondDonors,omitempty"`
	RotatableBonds *int     `json:"rotatableBonds,omitempty"`
	TPSA           *float64 `json:"tpsa,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (l *Ligand) UnmarshalJSON(data []byte) error {
	type alias Ligand
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = Ligand(a)
	var err error
	l.Extra, err = extraFields(data, l)
	return err
}

func (l Ligand) MarshalJSON() ([]byte, error) {
	type alias Ligand
	body, err := json.Marshal(alias(l))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, l.Extra)
}

// Interaction links a target and a ligand with affinity data.
type Interaction struct {
	InteractionID *int    `json:"interactionId,omitempty"`
	TargetID      *int    `json:"targetId,omitempty"`
	LigandID      *int    `json:"ligandId,omitempty"`
	Type          *string `json:"type,omitempty"`
	Action        *string `json:"action,omitempty"`
	Affinity      *string `json:"affinity,omitempty"`
	AffinityType  *string `json:"affinityType,omitempty"`
	Species       *string `json:"species,omitempty"`
	Approved      *bool   `json:"approved,omitempty"`
	PrimaryTarget *bool   `json:"primaryTarget,omitempty"`
	Endogenous    *bool   `json:"endogenous,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (i *Interaction) UnmarshalJSON(data []byte) error {
	type alias Interaction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*i = Interaction(a)
	var err error
	i.Extra, err = extraFields(data, i)
	return err
}

func (i Interaction) MarshalJSON() ([]byte, error) {
	type alias Interaction
	body, err := json.Marshal(alias(i))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, i.Extra)
}

// Family is a grouping of targets.
type Family struct {
	FamilyID        *int              `json:"familyId,omitempty"`
	Name            *string           `json:"name,omitempty"`
	TargetIDs       []int             `json:"targetIds,omitempty"`
	ParentFamilyIDs []int             `json:"parentFamilyIds,omitempty"`
	SubFamilyIDs    []int             `json:"subFamilyIds,omitempty"`
	Overview        *string           `json:"overview,omitempty"`
	Introduction    *string           `json:"introduction,omitempty"`
	Comments        *string           `json:"comments,omitempty"`
	Contributors    []json.RawMessage `json:"contributors,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (f *Family) UnmarshalJSON(data []byte) error {
	type alias Family
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Family(a)
	var err error
	f.Extra, err = extraFields(data, f)
	return err
}

func (f Family) MarshalJSON() ([]byte, error) {
	type alias Family
	body, err := json.Marshal(alias(f))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, f.Extra)
}

// Disease is a disease associated with targets or ligands.
type Disease struct {
	DiseaseID   *int     `json:"diseaseId,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Synonyms    []string `json:"synonyms,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *Disease) UnmarshalJSON(data []byte) error {
	type alias Disease
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Disease(a)
	var err error
	d.Extra, err = extraFields(data, d)
	return err
}

func (d Disease) MarshalJSON() ([]byte, error) {
	type alias Disease
	body, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, d.Extra)
}

// Reference is a bibliographic citation.
type Reference struct {
	ReferenceID *int    `json:"referenceId,omitempty"`
	PubMedID    *int    `json:"pmid,omitempty"`
	Type        *string `json:"type,omitempty"`
	Title       *string `json:"title,omitempty"`
	Authors     *string `json:"authors,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Journal     *string `json:"journal,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	type alias Reference
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Reference(a)
	var err error
	r.Extra, err = extraFields(data, r)
	return err
}

func (r Reference) MarshalJSON() ([]byte, error) {
	type alias Reference
	body, err := json.Marshal(alias(r))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, r.Extra)
}

// DatabaseLink is a cross-reference to an external database.
type DatabaseLink struct {
	Database  *string `json:"database,omitempty"`
	Accession *string `json:"accession,omitempty"`
	URL       *string `json:"url,omitempty"`
	Species   *string `json:"species,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *DatabaseLink) UnmarshalJSON(data []byte) error {
	type alias DatabaseLink
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = DatabaseLink(a)
	var err error
	d.Extra, err = extraFields(data, d)
	return err
}

func (d DatabaseLink) MarshalJSON() ([]byte, error) {
	type alias DatabaseLink
	body, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, d.Extra)
}

// Synonym is an alternative name for a target or ligand.
type Synonym struct {
	Name *string `json:"name,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (s *Synonym) UnmarshalJSON(data []byte) error {
	type alias Synonym
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Synonym(a)
	var err error
	s.Extra, err = extraFields(data, s)
	return err
}

func (s Synonym) MarshalJSON() ([]byte, error) {
	type alias Synonym
	body, err := json.Marshal(alias(s))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, s.Extra)
}

// GeneProteinInfo holds species-specific gene and protein information for a
// target.
type GeneProteinInfo struct {
	TargetID   *int    `json:"targetId,omitempty"`
	Species    *string `json:"species,omitempty"`
	GeneSymbol *string `json:"geneSymbol,omitempty"`
	GeneName   *string `json:"geneName,omitempty"`
	AminoAcids *int    `json:"aminoAcids,omitempty"`
	Chromosome *string `json:"chromosome,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (g *GeneProteinInfo) UnmarshalJSON(data []byte) error {
	type alias GeneProteinInfo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = GeneProteinInfo(a)
	var err error
	g.Extra, err = extraFields(data, g)
	return err
}

func (g GeneProteinInfo) MarshalJSON() ([]byte, error) {
	type alias GeneProteinInfo
	body, err := json.Marshal(alias(g))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, g.Extra)
}

// TargetFunction is a species-specific functional annotation for a target.
type TargetFunction struct {
	Species      *string `json:"species,omitempty"`
	FunctionText *string `json:"functionText,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (t *TargetFunction) UnmarshalJSON(data []byte) error {
	type alias TargetFunction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = TargetFunction(a)
	var err error
	t.Extra, err = extraFields(data, t)
	return err
}

func (t TargetFunction) MarshalJSON() ([]byte, error) {
	type alias TargetFunction
	body, err := json.Marshal(alias(t))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, t.Extra)
}

// LigandStructure holds the chemical structure descriptors for a ligand.
type LigandStructure struct {
	LigandID *int    `json:"ligandId,omitempty"`
	SMILES   *string `json:"smiles,omitempty"`
	InChI    *string `json:"inchi,omitempty"`
	InChIKey *string `json:"inchikey,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (l *LigandStructure) UnmarshalJSON(data []byte) error {
	type alias LigandStructure
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = LigandStructure(a)
	var err error
	l.Extra, err = extraFields(data, l)
	return err
}

func (l LigandStructure) MarshalJSON() ([]byte, error) {
	type alias LigandStructure
	body, err := json.Marshal(alias(l))
	if err != nil {
		return nil, err
	}
	return mergeExtra(body, l.Extra)
}
