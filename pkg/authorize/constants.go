package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // start a checkup, run an aggregation, etc.

	// Lifecycle actions
	ActionArchive Action = "archive"
	ActionApprove Action = "approve"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionArchive: {}, ActionApprove: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"
	ResourceOTP         Resource = "otp"

	// Clinic directory
	ResourceClinic      Resource = "clinic"
	ResourceClinicGroup Resource = "clinic_group"
	ResourceDoctor      Resource = "doctor"
	ResourceRealDoctor  Resource = "real_doctor"
	ResourceRealClinic  Resource = "real_clinic"

	// Patients
	ResourcePatient    Resource = "patient"
	ResourceSupervisor Resource = "supervisor"

	// Questionnaire engine
	ResourceQuestion       Resource = "question"
	ResourceQuestionOption Resource = "question_option"
	ResourceOrgan          Resource = "organ"
	ResourceClinicCheckup  Resource = "clinic_checkup"
	ResourceCheckup        Resource = "checkup"
	ResourceAnalysis       Resource = "analysis"
	ResourceSuggestion     Resource = "suggestion"

	// Supporting content
	ResourceAlert       Resource = "alert"
	ResourceMedia       Resource = "media"
	ResourceClinicMedia Resource = "clinic_media"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceOTP: {},
	ResourceClinic: {}, ResourceClinicGroup: {}, ResourceDoctor: {},
	ResourceRealDoctor: {}, ResourceRealClinic: {},
	ResourcePatient: {}, ResourceSupervisor: {},
	ResourceQuestion: {}, ResourceQuestionOption: {}, ResourceOrgan: {}, ResourceClinicCheckup: {},
	ResourceCheckup: {}, ResourceAnalysis: {}, ResourceSuggestion: {},
	ResourceAlert: {}, ResourceMedia: {}, ResourceClinicMedia: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Clinic roles (domain = clinic:<uuid>)
	RoleClinicManager Role = "role:clinic:manager"
	RoleClinicDoctor  Role = "role:clinic:doctor"
	RoleClinicPatient Role = "role:clinic:patient"

	// Supervisor acting for a patient (domain = user:<patient-user-uuid>)
	RoleSupervisor Role = "role:user:supervisor"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleClinicManager:      {},
	RoleClinicDoctor:       {},
	RoleClinicPatient:      {},
	RoleSupervisor:         {},
	RoleUserSelf:           {},
}

// Persian display names
var RoleDisplayNamesFA = map[Role]string{
	RolePlatformSuperAdmin: "سوپرادمین پلتفرم",
	RoleClinicManager:      "مدیر کلینیک",
	RoleClinicDoctor:       "پزشک",
	RoleClinicPatient:      "بیمار",
	RoleSupervisor:         "سرپرست",
	RoleUserSelf:           "خود کاربر",
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixClinic Domain = "clinic:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func ClinicDomain(clinicID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClinic, clinicID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixClinic) && s[:len(DomainPrefixClinic)] == string(DomainPrefixClinic):
		return reUUID.MatchString(s[len(DomainPrefixClinic):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
