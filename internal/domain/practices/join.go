package practices

// UnknownMemberName is shown for responses whose member no longer exists.
const UnknownMemberName = "Unknown member"

func IndexMembers(summaries []MemberSummary) map[string]MemberSummary {
	index := make(map[string]MemberSummary, len(summaries))
	for _, summary := range summaries {
		index[summary.ID] = summary
	}
	return index
}

// ResolveResponses pairs each stored response with the member it points to.
// Responses referencing a member missing from members are kept and marked
// Unknown. The result has the same length and order as responses.
func ResolveResponses(responses []MemberResponse, members map[string]MemberSummary) []ResolvedResponse {
	resolved := make([]ResolvedResponse, 0, len(responses))
	for _, response := range responses {
		summary, ok := members[response.MemberID]
		if !ok || summary.Name == "" {
			summary = MemberSummary{
				ID:      response.MemberID,
				Name:    UnknownMemberName,
				Unknown: true,
			}
		}
		summary.ID = response.MemberID
		resolved = append(resolved, ResolvedResponse{
			Member:      summary,
			Status:      response.Status,
			Note:        response.Note,
			RespondedAt: response.RespondedAt,
		})
	}
	return resolved
}

func referencedMemberIDs(practices []Practice) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, practice := range practices {
		for _, response := range practice.MemberResponses {
			if _, ok := seen[response.MemberID]; ok {
				continue
			}
			seen[response.MemberID] = struct{}{}
			ids = append(ids, response.MemberID)
		}
	}
	return ids
}
