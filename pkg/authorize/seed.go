package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// Manager: full control over the clinic's content and staff
		{RoleClinicManager, WildcardDomain, ResourceClinic, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceDoctor, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceQuestion, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceQuestionOption, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceClinicCheckup, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceAnalysis, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceSuggestion, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceAlert, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceMedia, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceClinicMedia, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceRealDoctor, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceRealClinic, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceCheckup, ActionRead, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceCheckup, ActionList, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Doctor: author questionnaire content, read patient sessions
		{RoleClinicDoctor, WildcardDomain, ResourceQuestion, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceQuestionOption, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceClinicCheckup, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceAnalysis, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceSuggestion, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceAlert, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceCheckup, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceCheckup, ActionList, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceClinicMedia, ActionRead, EffectAllow},

		// Patient: run checkups within the clinic, read its public content
		{RoleClinicPatient, WildcardDomain, ResourceClinicCheckup, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceClinicCheckup, ActionList, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceCheckup, ActionCreate, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceCheckup, ActionExecute, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceClinicMedia, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceSupervisor, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceCheckup, ActionManage, EffectAllow},

		// Supervisor: act on the supervised patient's sessions
		{RoleSupervisor, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleSupervisor, WildcardDomain, ResourceCheckup, ActionCreate, EffectAllow},
		{RoleSupervisor, WildcardDomain, ResourceCheckup, ActionRead, EffectAllow},
		{RoleSupervisor, WildcardDomain, ResourceCheckup, ActionList, EffectAllow},
		{RoleSupervisor, WildcardDomain, ResourceCheckup, ActionExecute, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicRole assigns a clinic role to a user for a specific clinic.
// Valid roles: RoleClinicManager, RoleClinicDoctor, RoleClinicPatient
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	switch role {
	case RoleClinicManager, RoleClinicDoctor, RoleClinicPatient:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveClinicRole removes a clinic role from a user for a specific clinic.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSupervisorRole grants a user the supervisor role in the supervised
// patient's private domain. Call this when a supervisor link is created.
func AssignSupervisorRole(ctx context.Context, auth IAuthorization, supervisorUserID, patientUserID string) error {
	domain := UserDomain(patientUserID)
	subject := GroupSubject(supervisorUserID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleSupervisor, domain)
	return err
}

// RemoveSupervisorRole revokes a supervisor's role in the patient's domain.
func RemoveSupervisorRole(ctx context.Context, auth IAuthorization, supervisorUserID, patientUserID string) error {
	domain := UserDomain(patientUserID)
	subject := GroupSubject(supervisorUserID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleSupervisor, domain)
	return err
}

// AssignSuperAdminRole assigns the platform superadmin role.
// Note: assign manually and with caution.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
