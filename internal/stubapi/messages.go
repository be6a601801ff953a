package stubapi

// Messages sent in response bodies. The client shows them verbatim.
const (
	msgInvalidJSON         = "JSON inválido"
	msgInvalidCredentials  = "Credenciales inválidas"
	msgLoginSucceeded      = "Inicio de sesión exitoso"
	msgMissingFields       = "Nombre, correo y contraseña son obligatorios"
	msgEmailTaken          = "El correo ya está registrado"
	msgRegisterSucceeded   = "Cuenta creada exitosamente"
	msgSessionExpired      = "Sesión expirada"
	msgLoggedOut           = "Sesión cerrada"
	msgWrongPassword       = "Contraseña actual incorrecta"
	msgPasswordTooShort    = "La contraseña debe tener al menos 6 caracteres"
	msgPasswordChanged     = "Contraseña actualizada exitosamente"
	msgEmailRequired       = "El correo es obligatorio"
	msgPasswordResetSent   = "Se ha enviado un enlace de recuperación a tu correo electrónico"
	msgInternalServerError = "Error interno del servidor"
)

const minPasswordLength = 6
