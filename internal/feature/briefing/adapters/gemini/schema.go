package gemini

import "briefing_backend/internal/feature/briefing/adapters/gemini/dto"

// briefingSchema はブリーフィングレスポンスの期待形状です。上流へ構造化出力を
// 要求するためだけに送信し、返ってきたレスポンスがこの形状に従うかの検証は
// 行いません。プロセス起動後は不変です。
var briefingSchema = &dto.Schema{
	Type: "OBJECT",
	Properties: map[string]*dto.Schema{
		"companyOverview": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"summary":                {Type: "STRING", Description: "Concise summary of what the company does."},
				"industry":               {Type: "STRING"},
				"headquarters":           {Type: "STRING"},
				"keyProductsAndServices": {Type: "STRING"},
			},
			Required: []string{"summary", "industry", "headquarters", "keyProductsAndServices"},
		},
		"strategicOutlook": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"growthStrategy":      {Type: "STRING"},
				"competitivePosition": {Type: "STRING"},
				"recentDevelopments":  {Type: "STRING"},
			},
			Required: []string{"growthStrategy", "competitivePosition", "recentDevelopments"},
		},
		"cultureAndValues": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"statedValues":    {Type: "STRING"},
				"workEnvironment": {Type: "STRING"},
			},
			Required: []string{"statedValues", "workEnvironment"},
		},
		"talentLandscape": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"hiringTrends":     {Type: "STRING"},
				"keyRolesInDemand": {Type: "STRING"},
			},
			Required: []string{"hiringTrends", "keyRolesInDemand"},
		},
		"riskAssessment": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"businessRisks":     {Type: "STRING"},
				"reputationalRisks": {Type: "STRING"},
			},
			Required: []string{"businessRisks", "reputationalRisks"},
		},
		"candidateAlignment": {
			Type: "OBJECT",
			Properties: map[string]*dto.Schema{
				"whyJoin":        {Type: "STRING"},
				"questionsToAsk": {Type: "STRING"},
			},
			Required: []string{"whyJoin", "questionsToAsk"},
		},
		"recentNews": {
			Type: "ARRAY",
			Items: &dto.Schema{
				Type: "OBJECT",
				Properties: map[string]*dto.Schema{
					"summary":   {Type: "STRING"},
					"sourceUrl": {Type: "STRING", Description: "Link to the original article."},
				},
				Required: []string{"summary", "sourceUrl"},
			},
		},
		"integrityStatement": {
			Type:        "STRING",
			Description: "Statement on the sourcing and reliability of the information above.",
		},
	},
	Required: []string{
		"companyOverview",
		"strategicOutlook",
		"cultureAndValues",
		"talentLandscape",
		"riskAssessment",
		"candidateAlignment",
		"recentNews",
		"integrityStatement",
	},
}
