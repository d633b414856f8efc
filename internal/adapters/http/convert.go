package httpadapter

import (
	api "nexuscore/internal/api"
	"nexuscore/internal/domain"
	sessionsvc "nexuscore/internal/services/session"
)

func toSubmission(in api.CompanySubmission) domain.CompanySubmission {
	sub := domain.CompanySubmission{
		Name:   in.Name,
		Sector: in.Sector,
		ARR:    in.Arr,
		Runway: in.Runway,
		Team:   in.Team,
		Claims: in.Claims,
	}
	if in.Id != nil && *in.Id != "" {
		sub.ID = *in.Id
	} else {
		sub.ID = domain.NewSubmissionID()
	}
	return sub
}

// toView applies role gating before anything leaves the process.
func toView(sess domain.Session) api.SessionView {
	v := sessionsvc.Present(sess)
	out := api.SessionView{
		SessionId: v.SessionID,
		Role:      api.Role(v.Role.String()),
		Screen:    api.Screen(v.Screen),
	}
	if v.Report != nil {
		out.Report = &api.NexusReport{
			SubmissionId:     v.Report.SubmissionID,
			Summary:          v.Report.Summary,
			InvestorEvidence: v.Report.InvestorEvidence,
			CreatedAt:        v.Report.CreatedAtISO(),
		}
	}
	if v.Denial != "" {
		denial := v.Denial
		out.Denial = &denial
	}
	return out
}

func notFound(what string) api.NotFoundJSONResponse {
	return api.NotFoundJSONResponse{Message: what + " not found"}
}
