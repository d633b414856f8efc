package checks

import (
	"context"
	"fmt"
	"strings"

	"nexuscore/internal/domain"
	"nexuscore/internal/ports"
)

// Mock AI checks. None performs I/O; every provider is total over its input.

const (
	// RiskThreshold is the ARR below which a company is flagged high risk.
	RiskThreshold = 50000
	// NewsArticleCount is the canned number of market articles cited.
	NewsArticleCount = 3

	RiskHigh     = "RiskAI: Low revenue, high risk detected!"
	RiskStable   = "RiskAI: Financial status looks stable."
	ESGCredible  = "ESGAI: Sustainability claims seem credible."
	ESGNoSignals = "ESGAI: No validated ESG sustainability signals."
	PartnersOK   = "PartnerAI: 2 verified business partners confirmed."

	esgToken = "eco"
)

// Default returns the providers in dispatch order: news, risk, esg, partners.
func Default() []ports.CheckProvider {
	return []ports.CheckProvider{News{}, Risk{}, ESG{}, Partners{}}
}

type News struct{}

func (News) Name() string { return "NewsAI" }

func (News) Evaluate(_ context.Context, sub domain.CompanySubmission) (string, error) {
	return fmt.Sprintf("NewsAI: %s found in %d market articles.", sub.Name, NewsArticleCount), nil
}

type Risk struct{}

func (Risk) Name() string { return "RiskAI" }

func (Risk) Evaluate(_ context.Context, sub domain.CompanySubmission) (string, error) {
	if sub.ARR < RiskThreshold {
		return RiskHigh, nil
	}
	return RiskStable, nil
}

// ESG treats empty claims as carrying no sustainability signal.
type ESG struct{}

func (ESG) Name() string { return "ESGAI" }

func (ESG) Evaluate(_ context.Context, sub domain.CompanySubmission) (string, error) {
	if strings.Contains(strings.ToLower(sub.Claims), esgToken) {
		return ESGCredible, nil
	}
	return ESGNoSignals, nil
}

type Partners struct{}

func (Partners) Name() string { return "PartnerAI" }

func (Partners) Evaluate(context.Context, domain.CompanySubmission) (string, error) {
	return PartnersOK, nil
}
