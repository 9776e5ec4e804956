package commands

import (
	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/order"
	"bundling/internal/pkg/errs"
)

// attachElement places element into aggregate, either at the top level when
// parentName is empty or inside the named container otherwise.
func attachElement(aggregate *order.Order, element bundle.Element, parentName string) error {
	if parentName == "" {
		return aggregate.AddElement(element)
	}

	found, _ := aggregate.FindElement(parentName)
	parent, ok := found.(*bundle.Container)
	if !ok {
		return errs.NewObjectNotFoundError("parentName", parentName)
	}

	return parent.Add(element)
}
