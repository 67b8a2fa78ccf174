package notification

import (
	"html/template"
	"strings"

	"github.com/dmitrymomot/vaptnotify/pkg/sanitizer"
)

// Record keys.
const (
	keyOrganizationName    = "organizationName"
	keyPrimaryContactName  = "primaryContactName"
	keyDesignation         = "designation"
	keyEmail               = "email"
	keyPhone               = "phone"
	keyMobileNumber        = "mobileNumber"
	keySecondaryName       = "secondaryContactName"
	keySecondaryEmail      = "secondaryEmail"
	keySecondaryMobile     = "secondaryMobileNumber"
	keyAssessmentType      = "assessmentType"
	keyTestingMode         = "testingMode"
	keyComplianceRequired  = "complianceRequired"
	keyComplianceType      = "complianceType"
	keyIPRange             = "ipRange"
	keyPublicIPs           = "publicIPs"
	keyDeviceCount         = "deviceCount"
	keyEnvironmentType     = "environmentType"
	keyTestingWindow       = "testingWindow"
	keyRestrictions        = "restrictions"
	keyExcludeSystems      = "excludeSystems"
	keyExcludedSystems     = "excludedSystemsList"
	keyNotifyBeforeTesting = "notifyBeforeTesting"
	keyVPNAccess           = "vpnAccess"
	keyTestCredentials     = "testCredentials"
	keyAccountType         = "accountType"
	keyReportFormat        = "reportFormat"
	keyRetestingRequired   = "retestingRequired"
	keyPermissionApproved  = "permissionApproved"
	keyApproverName        = "approverName"
	keyApproverDesignation = "approverDesignation"
	keyAdditionalNotes     = "additionalNotes"
	keyID                  = "id"
	keySubmittedDateTime   = "submittedDateTime"
	keySubmittedAt         = "submittedAt"
	keyUserIPAddress       = "userIPAddress"
)

// View is the typed projection of a Record that the email templates render.
// Show* flags decide which optional sections appear; the templates never
// inspect the Record directly.
type View struct {
	NotesHTML template.HTML

	OrganizationName    string
	PrimaryContactName  string
	Designation         string
	Email               string
	Phone               string
	MobileNumber        string
	SecondaryName       string
	SecondaryEmail      string
	SecondaryMobile     string
	TestingMode         string
	ComplianceType      string
	IPRange             string
	PublicIPs           string
	ExcludedSystems     string
	DeviceCount         string
	EnvironmentType     string
	TestingWindow       string
	NotifyBeforeTesting string
	VPNAccess           string
	TestCredentials     string
	ReportFormat        string
	RetestingRequired   string
	PermissionApproved  string
	ApproverName        string
	ApproverDesignation string
	Notes               string
	SubmissionID        string
	SubmittedAt         string
	UserIPAddress       string

	organization string // raw value, empty when missing

	AssessmentTypes []string
	Restrictions    []string

	ShowCompliance   bool
	ShowIPRange      bool
	ShowPublicIPs    bool
	ShowRestrictions bool
	ShowSecondary    bool
	ShowExcluded     bool
	ShowApprover     bool
	ShowNotes        bool
}

// NewView projects rec into a View. It does not modify rec.
func NewView(rec Record) View {
	v := View{
		OrganizationName:   rec.Text(keyOrganizationName),
		PrimaryContactName: rec.Text(keyPrimaryContactName),
		Designation:        rec.Text(keyDesignation),
		Email:              rec.Text(keyEmail),
		Phone:              rec.Text(keyPhone),
		MobileNumber:       rec.First(keyMobileNumber, keyPhone),

		ShowSecondary:   rec.Truthy(keySecondaryName) || rec.Truthy(keySecondaryEmail) || rec.Truthy(keySecondaryMobile),
		SecondaryName:   rec.Text(keySecondaryName),
		SecondaryEmail:  rec.Text(keySecondaryEmail),
		SecondaryMobile: rec.Text(keySecondaryMobile),

		AssessmentTypes: rec.List(keyAssessmentType),
		TestingMode:     rec.Text(keyTestingMode),

		ShowCompliance:  rec.Truthy(keyComplianceRequired),
		ComplianceType:  rec.Text(keyComplianceType),
		ShowIPRange:     rec.Truthy(keyIPRange),
		IPRange:         rec.Text(keyIPRange),
		ShowPublicIPs:   rec.Truthy(keyPublicIPs),
		PublicIPs:       rec.Text(keyPublicIPs),
		ShowExcluded:    rec.Truthy(keyExcludeSystems) && rec.Truthy(keyExcludedSystems),
		ExcludedSystems: rec.Text(keyExcludedSystems),

		DeviceCount:     rec.Text(keyDeviceCount),
		EnvironmentType: rec.Text(keyEnvironmentType),

		TestingWindow:       rec.Text(keyTestingWindow),
		NotifyBeforeTesting: rec.YesNo(keyNotifyBeforeTesting),
		ShowRestrictions:    rec.Truthy(keyRestrictions),
		Restrictions:        rec.List(keyRestrictions),
		VPNAccess:           rec.YesNo(keyVPNAccess),
		TestCredentials:     testCredentials(rec),

		ReportFormat:        rec.Text(keyReportFormat),
		RetestingRequired:   rec.YesNo(keyRetestingRequired),
		PermissionApproved:  rec.YesNo(keyPermissionApproved),
		ShowApprover:        rec.Truthy(keyPermissionApproved),
		ApproverName:        rec.Text(keyApproverName),
		ApproverDesignation: rec.Text(keyApproverDesignation),

		SubmissionID:  rec.Text(keyID),
		SubmittedAt:   rec.First(keySubmittedDateTime, keySubmittedAt),
		UserIPAddress: rec.Text(keyUserIPAddress),
	}

	if rec.Has(keyOrganizationName) {
		v.organization = v.OrganizationName
	}

	if rec.Truthy(keyAdditionalNotes) {
		notes := rec.Text(keyAdditionalNotes)
		v.ShowNotes = true
		v.Notes = sanitizer.StripHTML(notes)
		v.NotesHTML = template.HTML(sanitizer.Markdown(notes)) //nolint:gosec // sanitized by Markdown
	}

	return v
}

// OrganizationOr returns the organization name, or fallback when it is missing.
func (v View) OrganizationOr(fallback string) string {
	if v.organization == "" {
		return fallback
	}
	return v.organization
}

// Join renders a list for plain text output; an empty list renders as "None".
func (View) Join(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func testCredentials(rec Record) string {
	if !rec.Truthy(keyTestCredentials) {
		return "No"
	}
	if !rec.Has(keyAccountType) {
		return "Yes"
	}
	return "Yes (" + rec.Text(keyAccountType) + ")"
}
