package extraction

import "github.com/spigell/resume-tailor/internal/ai"

func stringList() *ai.Schema { return ai.ArrayOf(ai.String()) }

// ProfileSchema declares the shape requested for a UserProfile.
func ProfileSchema() *ai.Schema {
	return ai.Object(
		ai.Prop("fullName", ai.String()),
		ai.Prop("headline", ai.String()),
		ai.Prop("contactInfo", ai.Object(
			ai.Prop("email", ai.String()),
			ai.Prop("phone", ai.String()),
			ai.Prop("location", ai.String()),
			ai.Prop("website", ai.String()),
			ai.Prop("linkedIn", ai.String()),
			ai.Prop("github", ai.String()),
		)),
		ai.Prop("summary", ai.String()),
		ai.Prop("skills", ai.ArrayOf(ai.Object(
			ai.Prop("name", ai.String()),
			ai.Prop("category", ai.String()),
		))),
		ai.Prop("experience", ai.ArrayOf(ai.Object(
			ai.Prop("title", ai.String()),
			ai.Prop("company", ai.String()),
			ai.Prop("startDate", ai.String()),
			ai.Prop("endDate", ai.String()),
			ai.Prop("isCurrent", ai.Boolean()),
			ai.Prop("bullets", stringList()),
			ai.Prop("technologies", stringList()),
		))),
		ai.Prop("projects", ai.ArrayOf(ai.Object(
			ai.Prop("name", ai.String()),
			ai.Prop("description", ai.String()),
			ai.Prop("role", ai.String()),
			ai.Prop("technologies", stringList()),
			ai.Prop("bullets", stringList()),
		))),
		ai.Prop("education", ai.ArrayOf(ai.Object(
			ai.Prop("institution", ai.String()),
			ai.Prop("degree", ai.String()),
			ai.Prop("startDate", ai.String()),
			ai.Prop("endDate", ai.String()),
		))),
		ai.Prop("certifications", ai.ArrayOf(ai.Object(
			ai.Prop("name", ai.String()),
			ai.Prop("issuer", ai.String()),
			ai.Prop("date", ai.String()),
		))),
		ai.Prop("interests", stringList()),
	).WithRequired("fullName")
}

// JobSchema declares the shape requested for a JobDescription. The posting
// text itself is never requested back.
func JobSchema() *ai.Schema {
	return ai.Object(
		ai.Prop("title", ai.String()),
		ai.Prop("company", ai.String()),
		ai.Prop("location", ai.String()),
		ai.Prop("seniority", ai.String()),
		ai.Prop("employmentType", ai.String()),
		ai.Prop("requirements", stringList()),
		ai.Prop("responsibilities", stringList()),
		ai.Prop("preferredSkills", stringList()),
		ai.Prop("keywords", stringList()),
	).WithRequired("title", "company")
}
