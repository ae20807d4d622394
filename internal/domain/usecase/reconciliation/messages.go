package reconciliation

// Shopper-facing messages. The storefront is Spanish-speaking.
const (
	MessageFailed          = "Tu transacción no pudo ser autorizada. Ningún cobro fue realizado."
	MessageCanceledByUser  = "Orden cancelada por el usuario. Por favor, reintente el pago."
	MessageTimeout         = "Orden cancelada por inactividad del usuario en el formulario de pago. Por favor, reintente el pago."
	MessageFormError       = "Orden cancelada por un error en el formulario de pago. Por favor, reintente el pago."
	MessageException       = "No se pudo procesar el pago. Si el problema persiste, contacte al comercio."
	MessageCartManipulated = "El monto del carro ha cambiado mientras se procesaba el pago, la transacción fue cancelada. Ningún cobro fue realizado."
	MessageDuplicateCart   = "Otra transacción de este carro de compras ya fue aprobada. Se rechazó este pago para no generar un cobro duplicado."
)

// Order metadata sent to the commerce store on fulfillment
const (
	PaymentModuleName     = "Webpay"
	PaymentApprovedNotice = "Pago autorizado"
)
