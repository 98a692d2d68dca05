package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools on the server, wiring each to a
// handler that queries the Guide to Pharmacology web services.
func RegisterTools(s *server.MCPServer, svc *Service) {
	s.AddTool(createGetVersionTool(), handleGetVersion(svc))

	s.AddTool(createListTargetsTool(), handleListTargets(svc))
	s.AddTool(createGetTargetTool(), handleGetTarget(svc))
	s.AddTool(createGetTargetInteractionsTool(), handleGetTargetInteractions(svc))
	s.AddTool(createGetTargetDiseasesTool(), handleGetTargetDiseases(svc))
	s.AddTool(createGetTargetSynonymsTool(), handleGetTargetSynonyms(svc))
	s.AddTool(createGetTargetGeneProteinInfoTool(), handleGetTargetGeneProteinInfo(svc))
	s.AddTool(createGetTargetDatabaseLinksTool(), handleGetTargetDatabaseLinks(svc))
	s.AddTool(createGetTargetNaturalLigandsTool(), handleGetTargetNaturalLigands(svc))
	s.AddTool(createGetTargetFunctionTool(), handleGetTargetFunction(svc))

	s.AddTool(createListLigandsTool(), handleListLigands(svc))
	s.AddTool(createGetLigandTool(), handleGetLigand(svc))
	s.AddTool(createGetLigandInteractionsTool(), handleGetLigandInteractions(svc))
	s.AddTool(createGetLigandSynonymsTool(), handleGetLigandSynonyms(svc))
	s.AddTool(createGetLigandDatabaseLinksTool(), handleGetLigandDatabaseLinks(svc))
	s.AddTool(createGetLigandStructureTool(), handleGetLigandStructure(svc))
	s.AddTool(createExactMatchLigandsTool(), handleExactMatchLigands(svc))

	s.AddTool(createListInteractionsTool(), handleListInteractions(svc))
	s.AddTool(createGetInteractionTool(), handleGetInteraction(svc))

	s.AddTool(createListFamiliesTool(), handleListFamilies(svc))
	s.AddTool(createGetFamilyTool(), handleGetFamily(svc))

	s.AddTool(createListDiseasesTool(), handleListDiseases(svc))
	s.AddTool(createGetDiseaseTool(), handleGetDisease(svc))

	s.AddTool(createGetReferenceTool(), handleGetReference(svc))

	s.AddTool(createSearchTool(), handleSearch(svc))
}

// --- Tool definitions ---

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the pharmacology MCP server version and the upstream base URL. Use this to verify connectivity."),
	)
}

func createListTargetsTool() mcp.Tool {
	return mcp.NewTool("list_targets",
		mcp.WithDescription("List pharmacological targets from the Guide to Pharmacology, optionally filtered. With no filters returns the full target list (~3000 records)."),
		mcp.WithString("name", mcp.Description("Filter by target name (e.g., 'CCR5', '5-HT1A receptor')")),
		mcp.WithString("type", mcp.Description("Filter by target type: 'GPCR', 'NHR', 'LGIC', 'VGIC', 'OtherIC', 'Enzyme', 'CatalyticReceptor', 'Transporter', 'OtherProtein', 'AccessoryProtein'")),
		mcp.WithString("gene_symbol", mcp.Description("Filter by HGNC gene symbol (e.g., 'CCR5', 'HTR1A')")),
		mcp.WithString("ec_number", mcp.Description("Filter enzymes by EC number (e.g., '3.4.21.4')")),
		mcp.WithString("accession", mcp.Description("Filter by external database accession (use together with database)")),
		mcp.WithString("database", mcp.Description("External database the accession belongs to (e.g., 'UniProt', 'HGNC')")),
		mcp.WithBoolean("immuno", mcp.Description("Restrict to targets curated for immunopharmacology")),
		mcp.WithBoolean("malaria", mcp.Description("Restrict to targets curated for malaria pharmacology")),
	)
}

func createGetTargetTool() mcp.Tool {
	return mcp.NewTool("get_target",
		mcp.WithDescription("Get a single target by its GtoPdb target ID."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier (positive integer, e.g., 1 for 5-HT1A)")),
	)
}

func createGetTargetInteractionsTool() mcp.Tool {
	return mcp.NewTool("get_target_interactions",
		mcp.WithDescription("Get ligand interactions for a target, ordered as ranked by the upstream database."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
		mcp.WithString("species", mcp.Description("Filter by species (e.g., 'Human', 'Rat', 'Mouse')")),
		mcp.WithString("interaction_type", mcp.Description("Filter by interaction type (e.g., 'Agonist', 'Antagonist', 'Inhibitor')")),
		mcp.WithString("affinity_type", mcp.Description("Filter by affinity parameter (e.g., 'pKi', 'pIC50', 'pKd', 'pEC50')")),
		mcp.WithString("ligand_type", mcp.Description("Filter by ligand type (e.g., 'Synthetic organic', 'Peptide', 'Antibody')")),
		mcp.WithBoolean("approved", mcp.Description("Restrict to interactions with approved drugs")),
		mcp.WithBoolean("primary_target", mcp.Description("Restrict to interactions where this is the ligand's primary target")),
	)
}

func createGetTargetDiseasesTool() mcp.Tool {
	return mcp.NewTool("get_target_diseases",
		mcp.WithDescription("Get diseases associated with a target."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
	)
}

func createGetTargetSynonymsTool() mcp.Tool {
	return mcp.NewTool("get_target_synonyms",
		mcp.WithDescription("Get alternative names recorded for a target."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
	)
}

func createGetTargetGeneProteinInfoTool() mcp.Tool {
	return mcp.NewTool("get_target_gene_protein_info",
		mcp.WithDescription("Get species-specific gene and protein information for a target: gene symbol, chromosomal location, amino acid count."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
		mcp.WithString("species", mcp.Description("Filter by species (e.g., 'Human')")),
	)
}

func createGetTargetDatabaseLinksTool() mcp.Tool {
	return mcp.NewTool("get_target_database_links",
		mcp.WithDescription("Get cross-references from a target to external databases (UniProt, Ensembl, HGNC, etc.)."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
		mcp.WithString("species", mcp.Description("Filter by species")),
		mcp.WithString("database", mcp.Description("Filter by external database name (e.g., 'UniProt')")),
	)
}

func createGetTargetNaturalLigandsTool() mcp.Tool {
	return mcp.NewTool("get_target_natural_ligands",
		mcp.WithDescription("Get the endogenous/natural ligands recorded for a target."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
	)
}

func createGetTargetFunctionTool() mcp.Tool {
	return mcp.NewTool("get_target_function",
		mcp.WithDescription("Get curated functional annotation text for a target."),
		mcp.WithNumber("target_id", mcp.Required(), mcp.Description("GtoPdb target identifier")),
		mcp.WithString("species", mcp.Description("Filter by species")),
	)
}

func createListLigandsTool() mcp.Tool {
	return mcp.NewTool("list_ligands",
		mcp.WithDescription("List ligands from the Guide to Pharmacology, optionally filtered by name, type, chemical properties, or curation flags. Property ranges use greater-than/less-than bounds; supply both for a closed interval."),
		mcp.WithString("name", mcp.Description("Filter by ligand name (e.g., 'aspirin', 'maraviroc')")),
		mcp.WithString("type", mcp.Description("Filter by ligand type: 'Synthetic organic', 'Metabolite', 'Natural product', 'Endogenous peptide', 'Peptide', 'Antibody', 'Inorganic', 'Approved', 'Withdrawn', 'Labelled', 'INN'")),
		mcp.WithString("gene_symbol", mcp.Description("Filter peptide ligands by gene symbol")),
		mcp.WithString("accession", mcp.Description("Filter by external database accession (use together with database)")),
		mcp.WithString("database", mcp.Description("External database the accession belongs to (e.g., 'PubChem CID', 'ChEMBL')")),
		mcp.WithString("inchikey", mcp.Description("Filter by standard InChIKey")),
		mcp.WithBoolean("immuno", mcp.Description("Restrict to ligands curated for immunopharmacology")),
		mcp.WithBoolean("malaria", mcp.Description("Restrict to ligands curated for malaria pharmacology")),
		mcp.WithBoolean("antibacterial", mcp.Description("Restrict to ligands curated as antibacterials")),
		mcp.WithBoolean("approved", mcp.Description("Restrict to approved drugs")),
		mcp.WithNumber("mol_weight_gt", mcp.Description("Molecular weight greater than")),
		mcp.WithNumber("mol_weight_lt", mcp.Description("Molecular weight less than")),
		mcp.WithNumber("logp_gt", mcp.Description("Calculated LogP greater than")),
		mcp.WithNumber("logp_lt", mcp.Description("Calculated LogP less than")),
		mcp.WithNumber("lipinsky_gt", mcp.Description("Lipinski's rules broken, greater than")),
		mcp.WithNumber("lipinsky_lt", mcp.Description("Lipinski's rules broken, less than")),
		mcp.WithNumber("h_bond_acceptors_gt", mcp.Description("Hydrogen bond acceptor count greater than")),
		mcp.WithNumber("h_bond_acceptors_lt", mcp.Description("Hydrogen bond acceptor count less than")),
		mcp.WithNumber("h_bond_donors_gt", mcp.Description("Hydrogen bond donor count greater than")),
		mcp.WithNumber("h_bond_donors_lt", mcp.Description("Hydrogen bond donor count less than")),
		mcp.WithNumber("rotatable_bonds_gt", mcp.Description("Rotatable bond count greater than")),
		mcp.WithNumber("rotatable_bonds_lt", mcp.Description("Rotatable bond count less than")),
		mcp.WithNumber("tpsa_gt", mcp.Description("Topological polar surface area greater than")),
		mcp.WithNumber("tpsa_lt", mcp.Description("Topological polar surface area less than")),
	)
}

func createGetLigandTool() mcp.Tool {
	return mcp.NewTool("get_ligand",
		mcp.WithDescription("Get a single ligand by its GtoPdb ligand ID."),
		mcp.WithNumber("ligand_id", mcp.Required(), mcp.Description("GtoPdb ligand identifier (positive integer, e.g., 5 for acetylcholine)")),
	)
}

func createGetLigandInteractionsTool() mcp.Tool {
	return mcp.NewTool("get_ligand_interactions",
		mcp.WithDescription("Get target interactions for a ligand, ordered as ranked by the upstream database."),
		mcp.WithNumber("ligand_id", mcp.Required(), mcp.Description("GtoPdb ligand identifier")),
		mcp.WithString("species", mcp.Description("Filter by species (e.g., 'Human')")),
		mcp.WithString("interaction_type", mcp.Description("Filter by interaction type (e.g., 'Agonist', 'Antagonist')")),
		mcp.WithString("affinity_type", mcp.Description("Filter by affinity parameter (e.g., 'pKi', 'pIC50')")),
		mcp.WithBoolean("approved", mcp.Description("Restrict to approved-drug interactions")),
		mcp.WithBoolean("primary_target", mcp.Description("Restrict to the ligand's primary targets")),
	)
}

func createGetLigandSynonymsTool() mcp.Tool {
	return mcp.NewTool("get_ligand_synonyms",
		mcp.WithDescription("Get alternative names recorded for a ligand."),
		mcp.WithNumber("ligand_id", mcp.Required(), mcp.Description("GtoPdb ligand identifier")),
	)
}

func createGetLigandDatabaseLinksTool() mcp.Tool {
	return mcp.NewTool("get_ligand_database_links",
		mcp.WithDescription("Get cross-references from a ligand to external databases (PubChem, ChEMBL, DrugBank, etc.)."),
		mcp.WithNumber("ligand_id", mcp.Required(), mcp.Description("GtoPdb ligand identifier")),
		mcp.WithString("database", mcp.Description("Filter by external database name (e.g., 'ChEMBL')")),
	)
}

func createGetLigandStructureTool() mcp.Tool {
	return mcp.NewTool("get_ligand_structure",
		mcp.WithDescription("Get the chemical structure of a ligand: SMILES, InChI, InChIKey."),
		mcp.WithNumber("ligand_id", mcp.Required(), mcp.Description("GtoPdb ligand identifier")),
	)
}

func createExactMatchLigandsTool() mcp.Tool {
	return mcp.NewTool("exact_match_ligands",
		mcp.WithDescription("Find ligands whose structure exactly matches a SMILES string."),
		mcp.WithString("smiles", mcp.Required(), mcp.Description("SMILES string to match (e.g., 'CC(=O)Oc1ccccc1C(=O)O' for aspirin)")),
	)
}

func createListInteractionsTool() mcp.Tool {
	return mcp.NewTool("list_interactions",
		mcp.WithDescription("List target-ligand interactions, optionally filtered. Prefer get_target_interactions or get_ligand_interactions when one endpoint of the pair is known."),
		mcp.WithNumber("target_id", mcp.Description("Filter by GtoPdb target identifier")),
		mcp.WithNumber("ligand_id", mcp.Description("Filter by GtoPdb ligand identifier")),
		mcp.WithString("interaction_type", mcp.Description("Filter by interaction type")),
		mcp.WithString("affinity_type", mcp.Description("Filter by affinity parameter")),
		mcp.WithString("species", mcp.Description("Filter by species")),
		mcp.WithString("ligand_type", mcp.Description("Filter by ligand type")),
		mcp.WithBoolean("approved", mcp.Description("Restrict to approved-drug interactions")),
		mcp.WithBoolean("primary_target", mcp.Description("Restrict to primary-target interactions")),
	)
}

func createGetInteractionTool() mcp.Tool {
	return mcp.NewTool("get_interaction",
		mcp.WithDescription("Get a single interaction by its GtoPdb interaction ID."),
		mcp.WithNumber("interaction_id", mcp.Required(), mcp.Description("GtoPdb interaction identifier")),
	)
}

func createListFamiliesTool() mcp.Tool {
	return mcp.NewTool("list_families",
		mcp.WithDescription("List target families, optionally filtered by name or target type."),
		mcp.WithString("name", mcp.Description("Filter by family name (e.g., 'Chemokine receptors')")),
		mcp.WithString("type", mcp.Description("Filter by target type of the family's members (e.g., 'GPCR')")),
	)
}

func createGetFamilyTool() mcp.Tool {
	return mcp.NewTool("get_family",
		mcp.WithDescription("Get a single target family by its GtoPdb family ID."),
		mcp.WithNumber("family_id", mcp.Required(), mcp.Description("GtoPdb family identifier")),
	)
}

func createListDiseasesTool() mcp.Tool {
	return mcp.NewTool("list_diseases",
		mcp.WithDescription("List all diseases recorded in the Guide to Pharmacology."),
	)
}

func createGetDiseaseTool() mcp.Tool {
	return mcp.NewTool("get_disease",
		mcp.WithDescription("Get a single disease by its GtoPdb disease ID."),
		mcp.WithNumber("disease_id", mcp.Required(), mcp.Description("GtoPdb disease identifier")),
	)
}

func createGetReferenceTool() mcp.Tool {
	return mcp.NewTool("get_reference",
		mcp.WithDescription("Get a bibliographic reference by its GtoPdb reference ID."),
		mcp.WithNumber("reference_id", mcp.Required(), mcp.Description("GtoPdb reference identifier")),
	)
}

func createSearchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search targets or ligands by name. Convenience wrapper over the name filters of list_targets and list_ligands."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Name or partial name to search for")),
		mcp.WithString("entity", mcp.Required(), mcp.Description("Entity type to search: 'targets' or 'ligands'")),
	)
}
