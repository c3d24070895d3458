package guidance

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pmcompare"
)

type approachKey struct {
	typ      ProjectType
	scale    ProjectScale
	standard string
}

var approaches = map[approachKey]string{
	{Software, Small, "PMBOK"}:        "For this small-scale software project, we recommend an Agile-aligned approach following PMBOK's principles. Focus on iterative development with 1-2 week sprints, lightweight documentation, and frequent stakeholder feedback. The emphasis should be on rapid delivery of working software while maintaining quality through continuous integration and testing.",
	{Software, Small, "PRINCE2"}:      "This small software project benefits from a tailored PRINCE2 approach with simplified stage boundaries. Use PRINCE2's themes (Business Case, Organization, Quality, Plans, Risk, Change, Progress) but streamline processes. Consider 2-3 management stages with weekly checkpoints, focusing on controlled start-up and delivery phases.",
	{Software, Small, "ISO21502"}:     "Following ISO 21502 guidance for small projects, establish a streamlined governance structure with clear roles. Emphasize communication management and stakeholder engagement while keeping processes lightweight. Focus on establishing clear success criteria and maintaining alignment with organizational objectives.",
	{Software, Medium, "PMBOK"}:       "A hybrid approach combining PMBOK knowledge areas with agile practices is ideal. Use PMBOK's integration, scope, and quality management alongside agile iterations. Plan for 4-6 releases with proper risk management and stakeholder communication. Balance documentation with agility.",
	{Software, Large, "PMBOK"}:        "This large-scale software initiative requires comprehensive PMBOK application across all 10 knowledge areas. Implement formal program management with multiple work streams, rigorous change control, and extensive stakeholder management. Plan for phased releases with detailed risk mitigation and quality assurance at each stage.",
	{Construction, Small, "PRINCE2"}:  "Small construction projects thrive under PRINCE2's structured framework. Use clear stage gates (Planning, Foundation, Build, Handover) with emphasis on quality control and supplier management. Weekly progress reviews ensure tight schedule adherence and cost control.",
	{Construction, Medium, "PRINCE2"}: "For medium-scale construction, implement full PRINCE2 methodology with defined management stages. Establish strong governance through Project Board oversight, detailed planning for each construction phase, and rigorous quality inspection points. Focus on managing specialist subcontractors and material procurement.",
	{Construction, Large, "PRINCE2"}:  "Large construction projects demand comprehensive PRINCE2 governance with multiple authorization points. Structure into distinct stages (Design, Procurement, Foundation, Structure, Finishing, Commissioning) with formal gate reviews. Implement robust risk management for safety, regulatory compliance, and supply chain complexities.",
	{Research, Small, "ISO21502"}:     "Small research projects benefit from ISO 21502's flexible framework with emphasis on stakeholder engagement and knowledge management. Structure work in iterative cycles (literature review, methodology, data collection, analysis) with regular peer reviews. Focus on maintaining research integrity and documentation standards.",
	{Research, Medium, "ISO21502"}:    "Medium-scale research requires ISO 21502's comprehensive governance with strong emphasis on data management and quality assurance. Establish clear research phases with validation gates, ethical review checkpoints, and collaborative team structures. Focus on reproducibility and knowledge transfer.",
	{Research, Large, "ISO21502"}:     "Large research initiatives need full ISO 21502 implementation with multi-stakeholder governance. Structure as a program with multiple research streams, formal steering committee oversight, and regular publication milestones. Emphasize risk management for research validity, data security, and intellectual property.",
	{Marketing, Small, "PMBOK"}:       "Small marketing campaigns work well with PMBOK's iterative approach adapted for creative projects. Focus on scope management (campaign objectives), time management (launch dates), and stakeholder management (creative team, clients, media partners). Keep processes lightweight but maintain quality control for brand consistency.",
}

const (
	constructionPMBOK   = "Construction projects align well with PMBOK's traditional waterfall approach. Emphasize scope definition, detailed scheduling (CPM/PERT), cost estimation and control, quality assurance through inspections, and procurement management for materials and subcontractors. Strong integration management is critical for coordinating multiple specialties."
	largeInfrastructure = "Large infrastructure projects require rigorous planning and execution regardless of standard. Focus on multi-year phased delivery, extensive stakeholder management (government, public, contractors), regulatory compliance, environmental impact management, and public safety. Strong program management with clear governance is essential."
)

// approach picks the most specific template: an exact match, then the
// construction/PMBOK and large-infrastructure rules, then a generic text.
func approach(typ ProjectType, scale ProjectScale, std pmcompare.CatalogueEntry) string {
	if text, ok := approaches[approachKey{typ, scale, std.Name}]; ok {
		return text
	}
	switch {
	case typ == Construction && std.Name == "PMBOK":
		return constructionPMBOK
	case typ == Infrastructure && scale == Large:
		return largeInfrastructure
	}
	return fmt.Sprintf("This project will follow %s principles adapted to the %s %s context. The approach balances formality with flexibility, ensuring proper governance while enabling efficient delivery.",
		std.Title, strings.ToLower(scale.Label()), strings.ToLower(typ.Label()))
}

func phases(typ ProjectType, standard string) []string {
	switch {
	case typ == Software && standard == "PRINCE2":
		return []string{
			"Starting Up: Define project brief, appoint team, initial risk assessment",
			"Initiating: Create Project Initiation Document (PID), establish baselines",
			"Delivery Stages: Sprint planning, development iterations, testing cycles",
			"Closing: User acceptance, deployment, lessons learned, project closure",
		}
	case typ == Software:
		return []string{
			"Initiation: Requirements gathering, feasibility study, team formation",
			"Planning: Architecture design, sprint planning, resource allocation",
			"Execution: Iterative development, continuous integration, code reviews",
			"Monitoring & Control: Daily standups, sprint reviews, quality assurance",
			"Closure: UAT, deployment, documentation, post-launch support",
		}
	case typ == Construction && standard == "PRINCE2":
		return []string{
			"Pre-Project: Feasibility, site assessment, preliminary design",
			"Initiation: Detailed design, permitting, contractor selection",
			"Foundation Stage: Site preparation, foundation work, inspections",
			"Structure Stage: Main construction, quality checkpoints, safety audits",
			"Finishing Stage: Interior work, systems installation, final inspections",
			"Handover: Commissioning, documentation, defect liability period",
		}
	case typ == Construction:
		return []string{
			"Concept: Define requirements, site selection, feasibility analysis",
			"Design: Architectural/engineering design, permitting, approvals",
			"Procurement: Contractor bidding, material sourcing, contract negotiation",
			"Construction: Foundation, structure, MEP systems, finishes",
			"Commissioning: Testing, inspections, certification, handover",
		}
	case typ == Research:
		return []string{
			"Proposal: Research question, literature review, methodology design",
			"Planning: Protocol development, ethical approval, resource allocation",
			"Data Collection: Experiments/surveys, data gathering, quality checks",
			"Analysis: Data processing, statistical analysis, validation",
			"Dissemination: Paper writing, peer review, publication, presentation",
		}
	case typ == Infrastructure:
		return []string{
			"Planning: Needs assessment, environmental impact, stakeholder engagement",
			"Design: Detailed engineering, regulatory approvals, funding secured",
			"Procurement: Major contracts, equipment sourcing, partnerships",
			"Construction: Phased delivery, safety management, public communication",
			"Commissioning: Testing, training, phased handover, warranty period",
		}
	case typ == Marketing:
		return []string{
			"Strategy: Campaign objectives, audience research, creative brief",
			"Creative Development: Concept creation, design, content production",
			"Pre-Launch: Media planning, channel setup, test campaigns",
			"Execution: Campaign launch, multi-channel activation, monitoring",
			"Optimization: Performance analysis, A/B testing, adjustments",
			"Evaluation: ROI analysis, reporting, insights documentation",
		}
	}
	return nil
}

var scaleActivities = map[ProjectScale][]string{
	Small: {
		"Weekly team sync meetings (30 min)",
		"Bi-weekly stakeholder updates",
		"Lightweight documentation (only essential)",
		"Rapid decision-making processes",
	},
	Medium: {
		"Weekly steering committee meetings",
		"Bi-weekly detailed progress reports",
		"Monthly risk review sessions",
		"Formal change control process",
	},
	Large: {
		"Weekly program management office (PMO) coordination",
		"Bi-weekly executive steering committee",
		"Monthly comprehensive status reporting",
		"Formal gate reviews at phase transitions",
		"Dedicated risk management and quality assurance teams",
	},
}

var typeActivities = map[ProjectType][]string{
	Software: {
		"Daily standups (15 min)",
		"Sprint planning & retrospectives",
		"Code reviews and pair programming",
		"Automated testing and CI/CD pipelines",
	},
	Construction: {
		"Daily site safety briefings",
		"Weekly subcontractor coordination",
		"Regular quality inspections",
		"Material delivery scheduling",
	},
	Research: {
		"Regular peer review sessions",
		"Data validation and verification",
		"Literature updates and methodology reviews",
		"Conference presentations and publications",
	},
	Infrastructure: {
		"Public consultation sessions",
		"Regulatory compliance reporting",
		"Environmental monitoring",
		"Multi-agency coordination meetings",
	},
	Marketing: {
		"Creative review sessions",
		"Campaign performance monitoring",
		"Social media engagement tracking",
		"A/B testing and optimization",
	},
}

func activities(typ ProjectType, scale ProjectScale) []string {
	out := append([]string(nil), scaleActivities[scale]...)
	return append(out, typeActivities[typ]...)
}

var deliverables = map[ProjectType][]string{
	Software: {
		"Working software with source code repository",
		"Technical documentation (API docs, architecture diagrams)",
		"User documentation and training materials",
		"Test results and quality assurance reports",
		"Deployment guide and release notes",
		"Project closure report and lessons learned",
	},
	Construction: {
		"Completed facility/structure meeting specifications",
		"As-built drawings and documentation",
		"Quality inspection certificates",
		"Operations and maintenance manuals",
		"Warranty documentation",
		"Final project report and lessons learned",
	},
	Research: {
		"Research data sets (with metadata)",
		"Published papers in peer-reviewed journals",
		"Technical reports and white papers",
		"Presentation materials (conference posters/slides)",
		"Research protocol and methodology documentation",
		"Knowledge transfer materials",
	},
	Infrastructure: {
		"Operational infrastructure asset",
		"Comprehensive engineering documentation",
		"Environmental compliance reports",
		"Training programs for operators",
		"Public communication materials",
		"Asset management plan",
	},
	Marketing: {
		"Campaign creative assets (videos, graphics, copy)",
		"Multi-channel campaign execution",
		"Performance analytics dashboard",
		"Campaign ROI report",
		"Customer insights and learnings",
		"Brand assets library",
	},
}

var scaleRecommendations = map[ProjectScale][]string{
	Small: {
		"Keep processes lean - avoid over-engineering",
		"Empower team for quick decisions",
		"Focus on delivering working results over documentation",
	},
	Medium: {
		"Balance formality with agility",
		"Implement proper governance without bureaucracy",
		"Plan for scalability and future growth",
	},
	Large: {
		"Establish strong PMO for coordination",
		"Invest in stakeholder management and communication",
		"Plan for complexity and interdependencies",
	},
}

var typeRecommendations = map[ProjectType][]string{
	Software: {
		"Embrace DevOps practices for efficiency",
		"Prioritize user feedback and iterative improvement",
	},
	Construction: {
		"Safety is paramount - never compromise",
		"Maintain buffer for weather and supply delays",
	},
	Research: {
		"Document everything - reproducibility is key",
		"Build in time for peer review and revisions",
	},
	Infrastructure: {
		"Engage public and stakeholders early and often",
		"Plan for long-term operations from day one",
	},
	Marketing: {
		"Stay agile - be ready to pivot based on data",
		"Test early and often before full launch",
	},
}

var standardRecommendations = map[string][]string{
	"PMBOK": {
		"Review PMBOK's 10 knowledge areas for comprehensive coverage",
		"Tailor processes to your project's specific needs",
	},
	"PRINCE2": {
		"Use PRINCE2's 7 themes as health check throughout",
		"Ensure continued business justification at each stage",
	},
	"ISO21502": {
		"Align project objectives with organizational strategy",
		"Foster stakeholder engagement at all levels",
	},
}

func recommendations(typ ProjectType, scale ProjectScale, standard string) []string {
	out := append([]string(nil), scaleRecommendations[scale]...)
	out = append(out, typeRecommendations[typ]...)
	return append(out, standardRecommendations[standard]...)
}
