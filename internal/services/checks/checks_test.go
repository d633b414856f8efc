package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuscore/internal/domain"
)

func eval(t *testing.T, p interface {
	Evaluate(context.Context, domain.CompanySubmission) (string, error)
}, sub domain.CompanySubmission) string {
	t.Helper()
	out, err := p.Evaluate(context.Background(), sub)
	require.NoError(t, err)
	return out
}

func TestNewsCitesCompanyName(t *testing.T) {
	got := eval(t, News{}, domain.CompanySubmission{Name: "AI Farm Ltd."})
	assert.Equal(t, "NewsAI: AI Farm Ltd. found in 3 market articles.", got)
}

func TestRiskThreshold(t *testing.T) {
	cases := []struct {
		arr  float64
		want string
	}{
		{0, RiskHigh},
		{30000, RiskHigh},
		{49999.99, RiskHigh},
		{50000, RiskStable},
		{100000, RiskStable},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, eval(t, Risk{}, domain.CompanySubmission{ARR: c.arr}), "arr=%v", c.arr)
	}
}

func TestESGMatchesEcoCaseInsensitively(t *testing.T) {
	credible := []string{"We are eco-friendly", "We are ECO-conscious", "economy of scale", "EcO"}
	for _, claims := range credible {
		assert.Equal(t, ESGCredible, eval(t, ESG{}, domain.CompanySubmission{Claims: claims}), claims)
	}
	for _, claims := range []string{"", "We grow fast", "e c o"} {
		assert.Equal(t, ESGNoSignals, eval(t, ESG{}, domain.CompanySubmission{Claims: claims}), claims)
	}
}

func TestPartnersIsConstant(t *testing.T) {
	assert.Equal(t, PartnersOK, eval(t, Partners{}, domain.CompanySubmission{}))
}

func TestDefaultOrder(t *testing.T) {
	var names []string
	for _, p := range Default() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"NewsAI", "RiskAI", "ESGAI", "PartnerAI"}, names)
}
