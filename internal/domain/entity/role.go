package entity

// EffectiveRole es el resultado de resolver la autorización de un usuario en
// el login. Exactamente una de estas formas aplica:
//   - rol de sistema (CompanyID opcional, el admin puede "observar" una empresa)
//   - rol de membresía (CompanyID obligatorio)
// Si ninguna aplica el login falla con domain.ErrNoRole aunque la contraseña
// sea correcta.
type EffectiveRole struct {
	Role      string
	CompanyID string // "" cuando un rol de sistema opera sin contexto de empresa
	System    bool   // true si Role proviene de User.SystemRole
}

// ResolveEffectiveRole calcula el rol efectivo: el rol de sistema manda;
// si no hay, la membresía del usuario aporta empresa y rol.
// membership puede ser nil. Retorna ok=false si no hay rol utilizable.
func ResolveEffectiveRole(user *User, membership *Membership) (EffectiveRole, bool) {
	if user.IsSystemUser() {
		er := EffectiveRole{Role: user.SystemRole, System: true}
		if membership != nil {
			er.CompanyID = membership.CompanyID
		}
		return er, true
	}
	if membership != nil {
		return EffectiveRole{Role: membership.Role, CompanyID: membership.CompanyID}, true
	}
	return EffectiveRole{}, false
}

// IsSystemRole informa si un rol (ya resuelto, p. ej. desde un token) es de plataforma.
func IsSystemRole(role string) bool {
	return role == SystemRoleSuperAdmin || role == SystemRoleAdmin
}
