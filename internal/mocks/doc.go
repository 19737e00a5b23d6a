// Package mocks provides centralized mock implementations for testing.
//
// The store mocks are generated by mockgen from the interfaces in
// internal/store (see the go:generate directives there) and are driven with
// gomock expectations:
//
//	ctrl := gomock.NewController(t)
//	restaurants := mocks.NewMockRestaurantStore(ctrl)
//	restaurants.EXPECT().GetByID(gomock.Any(), "r-1").Return(nil, store.ErrRestaurantNotFound)
//
// MockJWTService is hand-written with function fields for each method and
// fixed default return values:
//
//	jwtSvc := &mocks.MockJWTService{
//	    Claims: &auth.Claims{UserID: "u-1", Role: domain.RoleAdmin},
//	}
package mocks
