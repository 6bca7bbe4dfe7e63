package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.store.write(ctx, "create", "leave_request", func() error {
		r.store.lastLeaveRequestID++
		request.ID = r.store.lastLeaveRequestID
		r.store.leaveRequests[request.ID] = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := r.store.read(ctx, "get", "leave_request", func() error {
		found, ok := r.store.leaveRequests[id]
		if !ok {
			return leave.ErrLeaveRequestNotFound
		}
		req = found
		return nil
	})
	return req, err
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	err := r.store.read(ctx, "list", "leave_request", func() error {
		for _, req := range r.store.leaveRequests {
			if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
				continue
			}
			requests = append(requests, req)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].SubmittedDate.Equal(requests[j].SubmittedDate) {
			return requests[i].SubmittedDate.After(requests[j].SubmittedDate)
		}
		return requests[i].ID < requests[j].ID
	})
	return requests, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, patch leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest
	err := r.store.write(ctx, "update", "leave_request", func() error {
		req, ok := r.store.leaveRequests[patch.ID]
		if !ok {
			return leave.ErrLeaveRequestNotFound
		}
		patch.Apply(&req)
		r.store.leaveRequests[req.ID] = req
		updated = req
		return nil
	})
	return updated, err
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.store.write(ctx, "delete", "leave_request", func() error {
		if _, ok := r.store.leaveRequests[id]; !ok {
			return leave.ErrLeaveRequestNotFound
		}
		delete(r.store.leaveRequests, id)
		return nil
	})
}

// HasOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	var overlapping bool
	err := r.store.read(ctx, "list", "leave_request", func() error {
		for _, req := range r.store.leaveRequests {
			if req.EmployeeID != employeeID || req.Status == leave.LeaveRequestStatusRejected {
				continue
			}
			if req.Overlaps(start, end) {
				overlapping = true
				return nil
			}
		}
		return nil
	})
	return overlapping, err
}
