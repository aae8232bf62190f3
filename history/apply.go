package history

import (
	"errors"
	"fmt"

	"github.com/milk9111/paintbox/canvas"
)

var (
	// ErrStaleAction is returned when the target of an action no longer
	// exists in the stack.
	ErrStaleAction = errors.New("history: action target no longer exists")
	// ErrUnknownAction is returned for an Action type the log cannot apply.
	ErrUnknownAction = errors.New("history: unknown action")
)

func layerByID(s *canvas.Stack, id canvas.LayerID) (*canvas.Layer, error) {
	l := s.ByID(id)
	if l == nil {
		return nil, fmt.Errorf("layer %s: %w", id, ErrStaleAction)
	}
	return l, nil
}

// revert applies the inverse of a to s.
func revert(s *canvas.Stack, a Action) error {
	switch a := a.(type) {
	case AddRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		if _, _, ok := l.RemoveRect(a.Rect.ID); !ok {
			return fmt.Errorf("rect %s: %w", a.Rect.ID, ErrStaleAction)
		}
	case RemoveRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		for _, r := range a.Removed {
			l.InsertRect(r.Index, r.Rect)
		}
	case MoveRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		if !l.MoveRect(a.Rect, a.From) {
			return fmt.Errorf("rect %s: %w", a.Rect, ErrStaleAction)
		}
	case ToggleVisibility:
		i := s.Index(a.Layer)
		if !s.SetVisible(i, a.Prev) {
			return fmt.Errorf("layer %s: %w", a.Layer, ErrStaleAction)
		}
	case ChangeActiveLayer:
		if !s.SetActive(a.Prev) {
			return fmt.Errorf("active %d: %w", a.Prev, ErrStaleAction)
		}
	case MoveLayer:
		i := s.Index(a.Layer)
		back := canvas.Down
		if a.Dir == canvas.Down {
			back = canvas.Up
		}
		if i < 0 || !s.MoveLayer(i, back) {
			return fmt.Errorf("layer %s: %w", a.Layer, ErrStaleAction)
		}
		s.SetActive(a.From)
	case DrawStroke:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		if _, ok := l.RemoveStroke(a.Stroke.ID); !ok {
			return fmt.Errorf("stroke %s: %w", a.Stroke.ID, ErrStaleAction)
		}
	case AddLayer:
		i := s.Index(a.Layer.ID)
		if _, ok := s.RemoveLayer(i); !ok {
			return fmt.Errorf("layer %s: %w", a.Layer.ID, ErrStaleAction)
		}
		s.SetActive(a.PrevActive)
	case RemoveLayer:
		s.InsertLayer(a.Index, a.Layer)
		s.SetActive(a.PrevActive)
	default:
		return fmt.Errorf("%T: %w", a, ErrUnknownAction)
	}
	return nil
}

// apply re-applies the forward effect of a to s.
func apply(s *canvas.Stack, a Action) error {
	switch a := a.(type) {
	case AddRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		l.AppendRect(a.Rect)
	case RemoveRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		// remove from the back so recorded indices stay valid
		for i := len(a.Removed) - 1; i >= 0; i-- {
			l.RemoveRect(a.Removed[i].Rect.ID)
		}
	case MoveRect:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		if !l.MoveRect(a.Rect, a.To) {
			return fmt.Errorf("rect %s: %w", a.Rect, ErrStaleAction)
		}
	case ToggleVisibility:
		i := s.Index(a.Layer)
		if !s.SetVisible(i, !a.Prev) {
			return fmt.Errorf("layer %s: %w", a.Layer, ErrStaleAction)
		}
	case ChangeActiveLayer:
		if !s.SetActive(a.Next) {
			return fmt.Errorf("active %d: %w", a.Next, ErrStaleAction)
		}
	case MoveLayer:
		i := s.Index(a.Layer)
		if i < 0 || !s.MoveLayer(i, a.Dir) {
			return fmt.Errorf("layer %s: %w", a.Layer, ErrStaleAction)
		}
	case DrawStroke:
		l, err := layerByID(s, a.Layer)
		if err != nil {
			return err
		}
		l.AppendStroke(a.Stroke)
	case AddLayer:
		s.InsertLayer(a.Index, a.Layer)
	case RemoveLayer:
		i := s.Index(a.Layer.ID)
		if _, ok := s.RemoveLayer(i); !ok {
			return fmt.Errorf("layer %s: %w", a.Layer.ID, ErrStaleAction)
		}
	default:
		return fmt.Errorf("%T: %w", a, ErrUnknownAction)
	}
	return nil
}
