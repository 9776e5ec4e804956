package services

import (
	"errors"

	"bundling/internal/core/domain/model/bundle"
)

// ErrNoBoxesProvided is returned when Pack is called without any candidate
// containers to place items into.
var ErrNoBoxesProvided = errors.New("no boxes provided")

// PackResult reports the outcome of a batch packing run.
type PackResult struct {
	// Packed is the number of items successfully placed.
	Packed int

	// Rejected holds the items no candidate box could accept, in input order.
	Rejected []*bundle.Item
}

// BoxPacker is a domain service that distributes a batch of items across a set
// of candidate containers.
//
// Key responsibilities:
//   - Validating items and boxes before placement
//   - Placing each item into the first box with remaining capacity
//   - Continuing the batch when a box rejects an item for capacity
//
// A capacity rejection is an expected business outcome, not a failure: the
// packer collects the items that did not fit and keeps processing the rest,
// so one full box never aborts the whole run.
//
// Example usage:
//
//	packer := services.NewBoxPacker()
//	result, err := packer.Pack(items, []*bundle.Container{smallBox, bigBox})
//	if err != nil {
//	    return err
//	}
//	for _, item := range result.Rejected {
//	    log.Printf("no box had room for %s", item.Name())
//	}
type BoxPacker struct{}

// NewBoxPacker creates a new BoxPacker instance.
func NewBoxPacker() BoxPacker {
	return BoxPacker{}
}

// Pack places each item into the first box that accepts it, in box order.
//
// Parameters:
//   - items: The items to place (each must be valid and unowned)
//   - boxes: Candidate containers, tried in order (must be non-empty and valid)
//
// Returns:
//   - PackResult: counts of placed items and the items that fit nowhere
//   - error: ErrNoBoxesProvided, or a validation error from an item or box;
//     capacity rejections never surface as errors
func (p BoxPacker) Pack(items []*bundle.Item, boxes []*bundle.Container) (PackResult, error) {
	if len(boxes) == 0 {
		return PackResult{}, ErrNoBoxesProvided
	}

	for _, box := range boxes {
		if err := box.Validate(); err != nil {
			return PackResult{}, err
		}
	}

	result := PackResult{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return PackResult{}, err
		}

		placed, err := p.placeInFirstFit(item, boxes)
		if err != nil {
			return PackResult{}, err
		}

		if placed {
			result.Packed++
		} else {
			result.Rejected = append(result.Rejected, item)
		}
	}

	return result, nil
}

// placeInFirstFit tries each box in order until one accepts the item.
// Capacity rejections move on to the next box; any other error aborts.
func (p BoxPacker) placeInFirstFit(item *bundle.Item, boxes []*bundle.Container) (bool, error) {
	for _, box := range boxes {
		err := box.Add(item)
		if err == nil {
			return true, nil
		}

		if errors.Is(err, bundle.ErrCapacityExceeded) {
			continue
		}

		return false, err
	}

	return false, nil
}
