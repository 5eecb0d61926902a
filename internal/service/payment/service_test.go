package payment

import (
	"testing"

	"github.com/matchday/matchday-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return New(Config{
		MerchantVPA:  "mswipe.1400111324038715@kotak",
		MerchantName: "BookMyShow",
	})
}

func TestService_Dispatch(t *testing.T) {
	t.Parallel()

	payload := &domain.PaymentPayload{
		Team1:      "Chennai Super Kings",
		Team2:      "Kolkata Knight Riders",
		TicketType: "Premium Stand",
		Quantity:   2,
		Total:      2433,
	}

	t.Run("phonepe", func(t *testing.T) {
		t.Parallel()
		link, err := newService().Dispatch(ProviderPhonePe, payload)
		require.NoError(t, err)
		require.Equal(t,
			"phonepe://pay?pa=mswipe.1400111324038715@kotak&pn=BookMyShow&am=2433&tn=Tickets+for+Chennai+Super+Kings+vs+Kolkata+Knight+Riders&cu=INR",
			link)
	})

	t.Run("paytm", func(t *testing.T) {
		t.Parallel()
		link, err := newService().Dispatch(ProviderPaytm, payload)
		require.NoError(t, err)
		require.Contains(t, link, "paytmmp://pay?")
		require.Contains(t, link, "am=2433")
	})

	t.Run("google pay never dispatches", func(t *testing.T) {
		t.Parallel()
		link, err := newService().Dispatch(ProviderGooglePay, payload)
		require.ErrorIs(t, err, ErrProviderUnavailable)
		require.Empty(t, link)
	})

	t.Run("generic link orders tn before am", func(t *testing.T) {
		t.Parallel()
		link, err := newService().Dispatch(ProviderOther, payload)
		require.NoError(t, err)
		require.Equal(t,
			"upi://pay?pa=mswipe.1400111324038715@kotak&pn=BookMyShow&tn=Tickets+for+Chennai+Super+Kings+vs+Kolkata+Knight+Riders&am=2433&cu=INR",
			link)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		_, err := newService().Dispatch(Provider("cashapp"), payload)
		require.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("missing payload falls back to the example payment", func(t *testing.T) {
		t.Parallel()
		link, err := newService().Dispatch(ProviderPhonePe, nil)
		require.NoError(t, err)
		require.Contains(t, link, "am=311")
		require.Contains(t, link, "Gujarat+Titans+vs+Rajasthan+Royals")
	})
}

func TestService_Providers(t *testing.T) {
	t.Parallel()

	infos := newService().Providers()
	require.Len(t, infos, 4)

	byID := make(map[Provider]ProviderInfo, len(infos))
	for _, p := range infos {
		byID[p.ID] = p
	}

	require.True(t, byID[ProviderPhonePe].Available)
	require.True(t, byID[ProviderPaytm].Available)
	require.True(t, byID[ProviderOther].Available)

	gp := byID[ProviderGooglePay]
	require.False(t, gp.Available)
	require.Equal(t, GooglePayNotice, gp.Notice)
}
