package apperr

import "github.com/tuanvumaihuynh/product-inventory/pkg/zerror"

const (
	ValidationErrorCode           = "VALIDATION_FAILED"
	InvalidParameterCode          = "INVALID_PARAMETER"
	InvalidBodyCode               = "INVALID_BODY"
	IDMismatchCode                = "ID_MISMATCH"
	ProductNotFoundCode           = "PRODUCT_NOT_FOUND"
	CategoryNotFoundCode          = "CATEGORY_NOT_FOUND"
	CategoryReferenceNotFoundCode = "CATEGORY_REFERENCE_NOT_FOUND"
	CategoryNameConflictCode      = "CATEGORY_NAME_CONFLICT"
	StoreUnavailableCode          = "STORE_UNAVAILABLE"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	InvalidParameterErr = zerror.NewBadRequest(InvalidParameterCode, "invalid request parameter")
	InvalidBodyErr      = zerror.NewBadRequest(InvalidBodyCode, "request body is not valid JSON")
	IDMismatchErr       = zerror.NewBadRequest(IDMismatchCode, "id in path does not match id in body")

	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	CategoryNotFoundErr = zerror.NewNotFound(CategoryNotFoundCode, "product category not found")

	CategoryReferenceNotFoundErr = zerror.NewValidationFailed(CategoryReferenceNotFoundCode, "referenced product category does not exist")
	CategoryNameConflictErr      = zerror.NewConflict(CategoryNameConflictCode, "a product category with this name already exists")

	StoreUnavailableErr = zerror.NewServiceUnavailable(StoreUnavailableCode, "store is unavailable")
)
