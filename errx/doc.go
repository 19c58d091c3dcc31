/*
Package errx provides structured errors with types, codes, details and HTTP
status mapping, plus writers for net/http and Fiber.

# Registries

Each package declares its errors once, in a var block:

	var (
		actionErrors = errx.NewRegistry("ACTION")

		ErrUnknownResource  = actionErrors.Register("UNKNOWN_RESOURCE", errx.TypeBadRequest, http.StatusBadRequest, "Unknown resource")
		ErrUnknownOperation = actionErrors.Register("UNKNOWN_OPERATION", errx.TypeBadRequest, http.StatusBadRequest, "Unknown operation")
	)

and creates instances at the failure site:

	return actionErrors.NewWithMessage(ErrUnknownResource, fmt.Sprintf("The resource %q is not known!", name)).
		WithDetail("resource", name)

# Wrapping

NewWithCause and WithCause keep the original error reachable through
errors.Is / errors.As:

	err := gatewayErrors.NewWithCause(ErrTransport, netErr)
	errors.Is(err, context.DeadlineExceeded) // true when netErr was a deadline

# Checking

	if errx.IsCode(err, wsapi.ErrNotFound) { ... }
	if errx.IsType(err, errx.TypeExternal) { ... }

MessageOf returns the human message of an *Error and err.Error() otherwise.
It is what batch loops put into `{error: ...}` records.

# HTTP

	func handler(c *fiber.Ctx) error {
		records, err := router.Execute(ctx, inv)
		if err != nil {
			if xerr, ok := errx.As(err); ok {
				return xerr.ToFiber(c)
			}
			return errx.Wrap(err, "Action failed", errx.TypeInternal).ToFiber(c)
		}
		return c.JSON(fiber.Map{"records": records})
	}
*/
package errx
