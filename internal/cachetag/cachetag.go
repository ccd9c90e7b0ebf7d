// Package cachetag names the cache tags of the inventory API and which of them
// each mutation invalidates. The server publishes these tags and the client
// cache drops entries labelled with them.
package cachetag

import (
	"strconv"
	"strings"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/pkg/tagcache"
)

const (
	TypeProduct     = "Product"
	TypeProductList = "ProductList"
	TypeCategory    = "Category"
	TypeCatList     = "CategoryList"
)

func Product(id int64) tagcache.Tag {
	return tagcache.Tag{Type: TypeProduct, ID: strconv.FormatInt(id, 10)}
}

// ProductList covers every product list, filtered or not.
func ProductList() tagcache.Tag {
	return tagcache.Tag{Type: TypeProductList}
}

// AllProducts is the unfiltered product list.
func AllProducts() tagcache.Tag {
	return tagcache.Tag{Type: TypeProductList, ID: "all"}
}

func ProductsByStatus(status model.ProductStatus) tagcache.Tag {
	return tagcache.Tag{Type: TypeProductList, ID: "status-" + string(status)}
}

func ProductsByCategory(categoryID int64) tagcache.Tag {
	return tagcache.Tag{Type: TypeProductList, ID: "category-" + strconv.FormatInt(categoryID, 10)}
}

func Category(id int64) tagcache.Tag {
	return tagcache.Tag{Type: TypeCategory, ID: strconv.FormatInt(id, 10)}
}

// CategoryList covers every category list.
func CategoryList() tagcache.Tag {
	return tagcache.Tag{Type: TypeCatList}
}

func ProductCreated(categoryID *int64) []tagcache.Tag {
	tags := []tagcache.Tag{ProductList(), CategoryList()}
	if categoryID != nil {
		tags = append(tags, ProductsByCategory(*categoryID))
	}
	return tags
}

func ProductUpdated(id int64, categoryID *int64) []tagcache.Tag {
	return append([]tagcache.Tag{Product(id)}, ProductCreated(categoryID)...)
}

func InventoryUpdated(id int64) []tagcache.Tag {
	return []tagcache.Tag{Product(id), ProductList()}
}

func ProductDeleted(id int64) []tagcache.Tag {
	return []tagcache.Tag{Product(id), ProductList(), CategoryList()}
}

func CategoryCreated() []tagcache.Tag {
	return []tagcache.Tag{CategoryList()}
}

func CategoryUpdated(id int64) []tagcache.Tag {
	return []tagcache.Tag{Category(id), CategoryList(), ProductList()}
}

func CategoryDeleted(id int64) []tagcache.Tag {
	return CategoryUpdated(id)
}

// Strings renders tags for the wire.
func Strings(tags []tagcache.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

// Parse reverses Tag.String.
func Parse(s string) tagcache.Tag {
	typ, id, _ := strings.Cut(s, ":")
	return tagcache.Tag{Type: typ, ID: id}
}
