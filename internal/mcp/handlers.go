package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error serializing response: %v", err))
	}
	return textResult(string(out))
}

// checkArgs rejects argument names the tool does not declare. Unknown names
// are never forwarded upstream.
func checkArgs(tool string, args map[string]any, allowed ...string) error {
	for name := range args {
		found := false
		for _, a := range allowed {
			if name == a {
				found = true
				break
			}
		}
		if !found {
			return &gtp.UnsupportedParameterError{Tool: tool, Param: name}
		}
	}
	return nil
}

// Optional-argument accessors. A nil return means the caller did not supply
// the argument, which the query builder translates to "no filter".

func optString(args map[string]any, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	s := cast.ToString(v)
	return &s
}

func optBool(args map[string]any, key string) *bool {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	b := cast.ToBool(v)
	return &b
}

func optInt(args map[string]any, key string) *int {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	n := cast.ToInt(v)
	return &n
}

func optFloat(args map[string]any, key string) *float64 {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	f := cast.ToFloat64(v)
	return &f
}

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", &gtp.InvalidParameterError{Param: key, Reason: "required"}
	}
	s := cast.ToString(v)
	if s == "" {
		return "", &gtp.InvalidParameterError{Param: key, Reason: "must not be empty"}
	}
	return s, nil
}

// requireID extracts a required positive-integer identifier and returns it as
// a path segment. JSON numbers arrive as float64; non-integral values are
// rejected rather than truncated.
func requireID(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", &gtp.InvalidParameterError{Param: key, Reason: "required"}
	}
	var id int
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return "", &gtp.InvalidParameterError{Param: key, Reason: fmt.Sprintf("must be an integer, got %v", n)}
		}
		id = int(n)
	case int:
		id = n
	case int64:
		id = int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return "", &gtp.InvalidParameterError{Param: key, Reason: fmt.Sprintf("must be an integer, got %v", n)}
		}
		id = int(i)
	default:
		return "", &gtp.InvalidParameterError{Param: key, Reason: fmt.Sprintf("must be a number, got %T", v)}
	}
	return gtp.PathID(key, id)
}

// listCall performs a list request and returns the normalized records as
// JSON, preserving upstream order.
func listCall[T any](ctx context.Context, svc *Service, log *common.Logger, path string, q *gtp.Query) (*mcp.CallToolResult, error) {
	body, err := svc.client.Get(ctx, path, q.Values())
	if err != nil {
		log.Error().Str("path", path).Str("error", err.Error()).Msg("upstream call failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}
	records, err := gtp.DecodeList[T](body)
	if err != nil {
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}
	log.Debug().Str("path", path).Int("count", len(records)).Msg("list response")
	return jsonResult(records), nil
}

// oneCall performs a single-record lookup. Upstream 404 and empty-body
// responses both produce the explicit not-found text, not an error result.
func oneCall[T any](ctx context.Context, svc *Service, log *common.Logger, path string, q *gtp.Query, notFound string) (*mcp.CallToolResult, error) {
	var values url.Values
	if q != nil {
		values = q.Values()
	}
	body, err := svc.client.Get(ctx, path, values)
	if err != nil {
		if gtp.IsNotFound(err) {
			return textResult(notFound), nil
		}
		log.Error().Str("path", path).Str("error", err.Error()).Msg("upstream call failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}
	record, err := gtp.DecodeOne[T](body)
	if err != nil {
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}
	if record == nil {
		return textResult(notFound), nil
	}
	return jsonResult(record), nil
}

// --- Service tools ---

func handleGetVersion(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Pharmacology MCP Server\nVersion: %s\nUpstream: %s\nStatus: OK",
			common.GetFullVersion(), svc.client.BaseURL())
		return textResult(result), nil
	}
}

// --- Target tools ---

func handleListTargets(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("list_targets", args,
			"name", "type", "gene_symbol", "ec_number", "accession", "database", "immuno", "malaria"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("name", optString(args, "name")).
			SetString("type", optString(args, "type")).
			SetString("geneSymbol", optString(args, "gene_symbol")).
			SetString("ecNumber", optString(args, "ec_number")).
			SetString("accession", optString(args, "accession")).
			SetString("database", optString(args, "database")).
			SetBool("immuno", optBool(args, "immuno")).
			SetBool("malaria", optBool(args, "malaria"))
		return listCall[gtp.Target](ctx, svc, svc.toolLogger("list_targets"), "/targets", q)
	}
}

func handleGetTarget(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target", args, "target_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Target](ctx, svc, svc.toolLogger("get_target"), "/targets/"+id, nil,
			fmt.Sprintf("No target found with target_id %s", id))
	}
}

func handleGetTargetInteractions(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_interactions", args,
			"target_id", "species", "interaction_type", "affinity_type", "ligand_type", "approved", "primary_target"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("species", optString(args, "species")).
			SetString("type", optString(args, "interaction_type")).
			SetString("affinityType", optString(args, "affinity_type")).
			SetString("ligandType", optString(args, "ligand_type")).
			SetBool("approved", optBool(args, "approved")).
			SetBool("primaryTarget", optBool(args, "primary_target"))
		return listCall[gtp.Interaction](ctx, svc, svc.toolLogger("get_target_interactions"), "/targets/"+id+"/interactions", q)
	}
}

func handleGetTargetDiseases(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_diseases", args, "target_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return listCall[gtp.Disease](ctx, svc, svc.toolLogger("get_target_diseases"), "/targets/"+id+"/diseases", gtp.NewQuery())
	}
}

func handleGetTargetSynonyms(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_synonyms", args, "target_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return listCall[gtp.Synonym](ctx, svc, svc.toolLogger("get_target_synonyms"), "/targets/"+id+"/synonyms", gtp.NewQuery())
	}
}

func handleGetTargetGeneProteinInfo(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_gene_protein_info", args, "target_id", "species"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().SetString("species", optString(args, "species"))
		return listCall[gtp.GeneProteinInfo](ctx, svc, svc.toolLogger("get_target_gene_protein_info"), "/targets/"+id+"/geneProteinInformation", q)
	}
}

func handleGetTargetDatabaseLinks(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_database_links", args, "target_id", "species", "database"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("species", optString(args, "species")).
			SetString("database", optString(args, "database"))
		return listCall[gtp.DatabaseLink](ctx, svc, svc.toolLogger("get_target_database_links"), "/targets/"+id+"/databaseLinks", q)
	}
}

func handleGetTargetNaturalLigands(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_natural_ligands", args, "target_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return listCall[gtp.Ligand](ctx, svc, svc.toolLogger("get_target_natural_ligands"), "/targets/"+id+"/naturalLigands", gtp.NewQuery())
	}
}

func handleGetTargetFunction(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_target_function", args, "target_id", "species"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "target_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().SetString("species", optString(args, "species"))
		return listCall[gtp.TargetFunction](ctx, svc, svc.toolLogger("get_target_function"), "/targets/"+id+"/function", q)
	}
}

// --- Ligand tools ---

func handleListLigands(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("list_ligands", args,
			"name", "type", "gene_symbol", "accession", "database", "inchikey",
			"immuno", "malaria", "antibacterial", "approved",
			"mol_weight_gt", "mol_weight_lt", "logp_gt", "logp_lt",
			"lipinsky_gt", "lipinsky_lt", "h_bond_acceptors_gt", "h_bond_acceptors_lt",
			"h_bond_donors_gt", "h_bond_donors_lt", "rotatable_bonds_gt", "rotatable_bonds_lt",
			"tpsa_gt", "tpsa_lt"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("name", optString(args, "name")).
			SetString("type", optString(args, "type")).
			SetString("geneSymbol", optString(args, "gene_symbol")).
			SetString("accession", optString(args, "accession")).
			SetString("database", optString(args, "database")).
			SetString("inchikey", optString(args, "inchikey")).
			SetBool("immuno", optBool(args, "immuno")).
			SetBool("malaria", optBool(args, "malaria")).
			SetBool("antibacterial", optBool(args, "antibacterial")).
			SetBool("approved", optBool(args, "approved")).
			SetRange("molWeight", optFloat(args, "mol_weight_gt"), optFloat(args, "mol_weight_lt")).
			SetRange("logP", optFloat(args, "logp_gt"), optFloat(args, "logp_lt")).
			SetRange("lipinsky", optFloat(args, "lipinsky_gt"), optFloat(args, "lipinsky_lt")).
			SetRange("hBondAcceptors", optFloat(args, "h_bond_acceptors_gt"), optFloat(args, "h_bond_acceptors_lt")).
			SetRange("hBondDonors", optFloat(args, "h_bond_donors_gt"), optFloat(args, "h_bond_donors_lt")).
			SetRange("rotatableBonds", optFloat(args, "rotatable_bonds_gt"), optFloat(args, "rotatable_bonds_lt")).
			SetRange("tpsa", optFloat(args, "tpsa_gt"), optFloat(args, "tpsa_lt"))
		return listCall[gtp.Ligand](ctx, svc, svc.toolLogger("list_ligands"), "/ligands", q)
	}
}

func handleGetLigand(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_ligand", args, "ligand_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "ligand_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Ligand](ctx, svc, svc.toolLogger("get_ligand"), "/ligands/"+id, nil,
			fmt.Sprintf("No ligand found with ligand_id %s", id))
	}
}

func handleGetLigandInteractions(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_ligand_interactions", args,
			"ligand_id", "species", "interaction_type", "affinity_type", "approved", "primary_target"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "ligand_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("species", optString(args, "species")).
			SetString("type", optString(args, "interaction_type")).
			SetString("affinityType", optString(args, "affinity_type")).
			SetBool("approved", optBool(args, "approved")).
			SetBool("primaryTarget", optBool(args, "primary_target"))
		return listCall[gtp.Interaction](ctx, svc, svc.toolLogger("get_ligand_interactions"), "/ligands/"+id+"/interactions", q)
	}
}

func handleGetLigandSynonyms(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_ligand_synonyms", args, "ligand_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "ligand_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return listCall[gtp.Synonym](ctx, svc, svc.toolLogger("get_ligand_synonyms"), "/ligands/"+id+"/synonyms", gtp.NewQuery())
	}
}

func handleGetLigandDatabaseLinks(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_ligand_database_links", args, "ligand_id", "database"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "ligand_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().SetString("database", optString(args, "database"))
		return listCall[gtp.DatabaseLink](ctx, svc, svc.toolLogger("get_ligand_database_links"), "/ligands/"+id+"/databaseLinks", q)
	}
}

func handleGetLigandStructure(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_ligand_structure", args, "ligand_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "ligand_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.LigandStructure](ctx, svc, svc.toolLogger("get_ligand_structure"), "/ligands/"+id+"/structure", nil,
			fmt.Sprintf("No structure found for ligand_id %s", id))
	}
}

func handleExactMatchLigands(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("exact_match_ligands", args, "smiles"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		smiles, err := requireString(args, "smiles")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().SetString("smiles", &smiles)
		return listCall[gtp.Ligand](ctx, svc, svc.toolLogger("exact_match_ligands"), "/ligands/exact", q)
	}
}

// --- Interaction tools ---

func handleListInteractions(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("list_interactions", args,
			"target_id", "ligand_id", "interaction_type", "affinity_type", "species", "ligand_type", "approved", "primary_target"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetInt("targetId", optInt(args, "target_id")).
			SetInt("ligandId", optInt(args, "ligand_id")).
			SetString("type", optString(args, "interaction_type")).
			SetString("affinityType", optString(args, "affinity_type")).
			SetString("species", optString(args, "species")).
			SetString("ligandType", optString(args, "ligand_type")).
			SetBool("approved", optBool(args, "approved")).
			SetBool("primaryTarget", optBool(args, "primary_target"))
		return listCall[gtp.Interaction](ctx, svc, svc.toolLogger("list_interactions"), "/interactions", q)
	}
}

func handleGetInteraction(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_interaction", args, "interaction_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "interaction_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Interaction](ctx, svc, svc.toolLogger("get_interaction"), "/interactions/"+id, nil,
			fmt.Sprintf("No interaction found with interaction_id %s", id))
	}
}

// --- Family tools ---

func handleListFamilies(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("list_families", args, "name", "type"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().
			SetString("name", optString(args, "name")).
			SetString("type", optString(args, "type"))
		return listCall[gtp.Family](ctx, svc, svc.toolLogger("list_families"), "/targets/families", q)
	}
}

func handleGetFamily(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_family", args, "family_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "family_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Family](ctx, svc, svc.toolLogger("get_family"), "/targets/families/"+id, nil,
			fmt.Sprintf("No family found with family_id %s", id))
	}
}

// --- Disease tools ---

func handleListDiseases(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("list_diseases", args); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return listCall[gtp.Disease](ctx, svc, svc.toolLogger("list_diseases"), "/diseases", gtp.NewQuery())
	}
}

func handleGetDisease(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_disease", args, "disease_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "disease_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Disease](ctx, svc, svc.toolLogger("get_disease"), "/diseases/"+id, nil,
			fmt.Sprintf("No disease found with disease_id %s", id))
	}
}

// --- Reference tools ---

func handleGetReference(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("get_reference", args, "reference_id"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		id, err := requireID(args, "reference_id")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return oneCall[gtp.Reference](ctx, svc, svc.toolLogger("get_reference"), "/references/"+id, nil,
			fmt.Sprintf("No reference found with reference_id %s", id))
	}
}

// --- Search ---

func handleSearch(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if err := checkArgs("search", args, "query", "entity"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		query, err := requireString(args, "query")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		entity, err := requireString(args, "entity")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		q := gtp.NewQuery().SetString("name", &query)
		switch entity {
		case "targets":
			return listCall[gtp.Target](ctx, svc, svc.toolLogger("search"), "/targets", q)
		case "ligands":
			return listCall[gtp.Ligand](ctx, svc, svc.toolLogger("search"), "/ligands", q)
		default:
			invalid := &gtp.InvalidParameterError{Param: "entity", Reason: fmt.Sprintf("must be 'targets' or 'ligands', got %q", entity)}
			return errorResult(fmt.Sprintf("Error: %v", invalid)), nil
		}
	}
}
