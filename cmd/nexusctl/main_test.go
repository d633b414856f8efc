package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"nexuscore/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	genSub = domain.CompanySubmission{}
	genOutput = "json"
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := runCLI(t, "generate", "--id", "sub_1", "--name", "AI Farm Ltd.", "--arr", "30000",
		"--claims", "We are eco-friendly")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "sub_1", got["submissionId"])
	assert.Len(t, got["summary"], 4)
	assert.NotEmpty(t, got["createdAt"])
}

func TestGenerateYAML(t *testing.T) {
	out, err := runCLI(t, "generate", "--name", "Acme", "--arr", "100000", "--claims", "We grow fast", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		SubmissionID     string   `yaml:"submissionId"`
		Summary          []string `yaml:"summary"`
		InvestorEvidence []string `yaml:"investorEvidence"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.SubmissionID, "sub_")
	assert.Equal(t, "RiskAI: Financial status looks stable.", got.Summary[1])
	assert.Equal(t, "ESGAI: No validated ESG sustainability signals.", got.Summary[2])
	assert.Len(t, got.InvestorEvidence, 3)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "generate", "--name", "Acme", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
