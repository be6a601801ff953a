// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// FitiPlus client: the session gateway, the stub API and the front ends.
//
// All Msg* constants are user-facing strings. Screens display them verbatim,
// so they are Spanish like the rest of the product.
package app

const (
	// MsgLoginSucceeded is returned on a server-issued login.
	MsgLoginSucceeded = "Inicio de sesión exitoso"

	// MsgOfflineLoginSucceeded marks a session minted by the offline demo
	// login. Screens must be able to tell it apart from MsgLoginSucceeded.
	MsgOfflineLoginSucceeded = "Sesión iniciada sin conexión (modo demostración)"

	// MsgInvalidCredentials is the fallback for a 401 on login and the
	// answer of the offline demo login on mismatch.
	MsgInvalidCredentials = "Credenciales inválidas"

	// MsgLoginFailed is the generic login failure message.
	MsgLoginFailed = "Error al iniciar sesión. Intenta nuevamente."

	MsgRegisterSucceeded = "Cuenta creada exitosamente"
	MsgRegisterFailed    = "Error al crear la cuenta. Intenta nuevamente."

	MsgLogoutSucceeded = "Sesión cerrada"

	MsgRefreshSucceeded = "Sesión renovada"
	MsgRefreshFailed    = "No se pudo renovar la sesión"

	// MsgNoRefreshToken is returned by refresh without touching the network.
	MsgNoRefreshToken = "No hay token de renovación disponible"

	// MsgNotAuthenticated is returned by operations that need a session when
	// none is stored.
	MsgNotAuthenticated = "Usuario no autenticado"

	MsgPasswordChanged      = "Contraseña actualizada exitosamente"
	MsgPasswordChangeFailed = "Error al cambiar contraseña"

	MsgPasswordResetSent   = "Se ha enviado un enlace de recuperación a tu correo electrónico"
	MsgPasswordResetFailed = "Error al enviar solicitud de recuperación"

	MsgProfileLoaded     = "Perfil actualizado"
	MsgProfileLoadFailed = "No se pudo cargar el perfil"

	// MsgTimeout is returned when a request exceeded the configured timeout.
	MsgTimeout = "El servidor tardó demasiado en responder. Intenta nuevamente."

	// MsgNetworkError is returned when no response was received.
	MsgNetworkError = "No se pudo conectar con el servidor. Revisa tu conexión."

	// MsgOffline is returned by login when connectivity is known to be down
	// and the offline demo mode is disabled.
	MsgOffline = "Sin conexión. Intenta nuevamente cuando vuelvas a estar en línea."

	// MsgMalformedResponse is returned when a 2xx body could not be decoded.
	MsgMalformedResponse = "Respuesta inválida del servidor"

	MsgServerError = "Error del servidor. Intenta nuevamente más tarde."

	MsgWelcomeCardsFailed = "No se pudieron cargar las tarjetas de bienvenida"
	MsgStagesFailed       = "No se pudieron cargar las etapas del formulario"
	MsgGoalsFailed        = "No se pudieron cargar los objetivos"
	MsgAllergiesFailed    = "No se pudieron cargar las alergias"
)

// Validation messages shown by the login and registration forms.
const (
	MsgEmailRequired     = "Por favor ingresa tu correo electrónico"
	MsgPasswordRequired  = "Por favor ingresa tu contraseña"
	MsgEmailInvalid      = "Por favor ingresa un correo electrónico válido"
	MsgNameRequired      = "Por favor ingresa tu nombre completo"
	MsgPasswordTooShort  = "La contraseña debe tener al menos 6 caracteres"
	MsgPasswordsMismatch = "Las contraseñas no coinciden"

	MsgNewPasswordRequired     = "Por favor ingresa una contraseña"
	MsgConfirmPasswordRequired = "Por favor confirma tu contraseña"
)
