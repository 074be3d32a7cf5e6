package constants

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_CREATE             = "Create failed"
	ERROR_UPDATE             = "Update failed"
	ERROR_DELETE             = "Delete failed"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"

	MISSING_LOGIN_INPUT = "Username and password are required"
	INVALID_USERNAME    = "Username does not exist"
	INVALID_PASSWORD    = "Incorrect password"
	ACCOUNT_NOT_ACTIVE  = "Account is deactivated"
	CAN_NOT_HASH_PASSWORD = "Could not hash password"
	NOT_ADMIN           = "Admin access required"
	NOT_STAFF           = "Staff access required"

	MISSING_ORDER_FIELD    = "Missing required order field"
	INVALID_PAYMENT_METHOD = "Invalid payment method"
	INVALID_ORDER_ITEM     = "Invalid order item"
	TOTAL_MISMATCH         = "Order total does not match item sum"
	INSUFFICIENT_TENDER    = "Tendered cash does not cover the order total"
	INVALID_DENOMINATION   = "Unknown cash denomination"
	INVALID_STATUS         = "Invalid order status"
	BACKWARD_TRANSITION    = "Order status cannot move backwards"
	ORDER_NOT_FOUND        = "Order not found"
	CUSTOMER_NOT_FOUND     = "Customer not found"
	SERVICE_NOT_FOUND      = "Service not found"

	DUPLICATE_PHONE = "Phone number already registered"
	DUPLICATE_EMAIL = "Email already registered"
)

// Role names for staff accounts. Checked only through middleware.RequireRole.
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_CASHIER = "CASHIER"
)

const ORDER_NUMBER_PREFIX = "LOS-"
