package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductStatus is the stock state of a product. It travels by name.
type ProductStatus string

const (
	ProductStatusInStock      ProductStatus = "InStock"
	ProductStatusOutOfStock   ProductStatus = "OutOfStock"
	ProductStatusDiscontinued ProductStatus = "Discontinued"
	ProductStatusPreOrder     ProductStatus = "PreOrder"
)

// ProductStatuses lists every status in ordinal order.
var ProductStatuses = []ProductStatus{
	ProductStatusInStock,
	ProductStatusOutOfStock,
	ProductStatusDiscontinued,
	ProductStatusPreOrder,
}

func (s ProductStatus) String() string {
	return string(s)
}

// Validate implements the enum contract used by the validator.
func (s ProductStatus) Validate() error {
	for _, known := range ProductStatuses {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unknown product status: %q", string(s))
}

// RequiresZeroQuantity reports whether products in this status may not hold stock.
func (s ProductStatus) RequiresZeroQuantity() bool {
	return s == ProductStatusOutOfStock || s == ProductStatusPreOrder
}

// ParseProductStatus accepts a status name, case-insensitively, or its
// ordinal ("0".."3").
func ParseProductStatus(v string) (ProductStatus, error) {
	v = strings.TrimSpace(v)
	for _, known := range ProductStatuses {
		if strings.EqualFold(v, string(known)) {
			return known, nil
		}
	}

	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(ProductStatuses) {
		return ProductStatuses[n], nil
	}

	return "", fmt.Errorf("unknown product status: %q", v)
}
